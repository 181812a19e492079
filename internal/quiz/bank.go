package quiz

// DefaultBank returns the built-in quizzes, keyed by chapter.
func DefaultBank() Bank {
	return Bank{
		"ch05": {
			Question: "Which of these is a best practice for improving output quality in prompt engineering?",
			Options: []string{
				"Use vague descriptions and let the model improvise",
				"Put instructions at the start and separate context with delimiters",
				`Use negative instructions telling the model what "not to do"`,
				"Provide as much information as possible in one go",
			},
			Correct: 1,
			Explanation: `Putting instructions first and separating context with delimiters such as ### or """ ` +
				"helps the model recognise each part of the prompt and avoids semantic confusion. " +
				"It is one of the officially recommended prompt-writing practices.",
		},
		"ch03": {
			Question: "What are the three stages of training a large model, in order?",
			Options: []string{
				"Fine-tuning → Pre-training → Reinforcement learning",
				"Pre-training → Fine-tuning → Reinforcement learning",
				"Reinforcement learning → Pre-training → Fine-tuning",
				"Pre-training → Reinforcement learning → Fine-tuning",
			},
			Correct: 1,
			Explanation: "Large models are trained in three stages: pre-training teaches the model to understand language, " +
				"fine-tuning teaches it to do specialised work, and reinforcement learning keeps it aligned.",
		},
	}
}
