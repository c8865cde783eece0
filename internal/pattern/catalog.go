package pattern

// Punjab Board exam paper structures.
//   Matric:       class 9th & 10th
//   Intermediate: class 11th & 12th
// One PaperPattern per class-group + subject, sections in Q-number order.

var matricScience = PaperPattern{
	ClassGroup:  "matric",
	Subject:     "Science",
	TotalMarks:  60,
	TimeAllowed: "2 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "12 × 1 = 12", TotalMarks: 12, TotalQuestions: 12, AttemptCount: 12, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 5 short questions.",
			MarksFormula: "5 × 2 = 10", TotalMarks: 10, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions", Instruction: "Attempt any 5 short questions.",
			MarksFormula: "5 × 2 = 10", TotalMarks: 10, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions", Instruction: "Attempt any 5 short questions.",
			MarksFormula: "5 × 2 = 10", TotalMarks: 10, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Long Questions", Instruction: "Attempt any 2 questions.",
			MarksFormula: "2 × 9 = 18", TotalMarks: 18, TotalQuestions: 3, AttemptCount: 2, MarksPerQuestion: 9,
			Type: SectionLong, HasSubParts: true, SubPartAMarks: 5, SubPartBMarks: 4,
		},
	},
}

var matricComputer = PaperPattern{
	ClassGroup:  "matric",
	Subject:     "Computer",
	TotalMarks:  60,
	TimeAllowed: "2 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "12 × 1 = 12", TotalMarks: 12, TotalQuestions: 12, AttemptCount: 12, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 4 short questions.",
			MarksFormula: "4 × 2 = 8", TotalMarks: 8, TotalQuestions: 6, AttemptCount: 4, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions", Instruction: "Attempt any 4 short questions.",
			MarksFormula: "4 × 2 = 8", TotalMarks: 8, TotalQuestions: 6, AttemptCount: 4, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions", Instruction: "Attempt any 4 short questions.",
			MarksFormula: "4 × 2 = 8", TotalMarks: 8, TotalQuestions: 6, AttemptCount: 4, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Long Questions", Instruction: "Attempt any 2 questions.",
			MarksFormula: "2 × 8 = 16", TotalMarks: 16, TotalQuestions: 3, AttemptCount: 2, MarksPerQuestion: 8,
			Type: SectionLong,
		},
	},
}

var matricMathematics = PaperPattern{
	ClassGroup:  "matric",
	Subject:     "Mathematics",
	TotalMarks:  75,
	TimeAllowed: "2.5 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "15 × 1 = 15", TotalMarks: 15, TotalQuestions: 15, AttemptCount: 15, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Long Questions", Instruction: "Attempt any 3 questions. Q9 (Theorem) is Compulsory.",
			MarksFormula: "3 × 8 = 24", TotalMarks: 24, TotalQuestions: 5, AttemptCount: 3, MarksPerQuestion: 8,
			Type: SectionLong, HasSubParts: true, SubPartAMarks: 4, SubPartBMarks: 4,
			SpecialNote: "Note: Q9 (Theorem) is Compulsory (8 Marks).",
		},
	},
}

var matricEnglish = PaperPattern{
	ClassGroup:  "matric",
	Subject:     "English",
	TotalMarks:  75,
	TimeAllowed: "2.5 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Choose the correct answer. (Spelling / Synonyms / Grammar)",
			MarksFormula: "19 × 1 = 19", TotalMarks: 19, TotalQuestions: 19, AttemptCount: 19, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 5 short questions.",
			MarksFormula: "5 × 2 = 10", TotalMarks: 10, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Translation of Paragraphs into Urdu", Instruction: "Attempt any 2 out of 3 paragraphs.",
			MarksFormula: "2 × 4 = 8", TotalMarks: 8, TotalQuestions: 3, AttemptCount: 2, MarksPerQuestion: 4,
			Type: SectionWriting, WritingPrompt: "Translate the following paragraph(s) into Urdu:", AnswerLines: 12,
		},
		{
			QNumber: 4, Title: "Summary / Poem Paraphrase", Instruction: "Write the summary of the poem or paraphrase the given stanza.",
			MarksFormula: "5 Marks", TotalMarks: 5, TotalQuestions: 1, AttemptCount: 1, MarksPerQuestion: 5,
			Type: SectionWriting, WritingPrompt: "Write the summary of the poem / Paraphrase the given stanza:", AnswerLines: 10,
		},
		{
			QNumber: 5, Title: "Essay / Letter / Story / Dialogue", Instruction: "Attempt the following.",
			MarksFormula: "15 Marks", TotalMarks: 15, TotalQuestions: 1, AttemptCount: 1, MarksPerQuestion: 15,
			Type: SectionWriting, WritingPrompt: "Write an essay / letter / story / dialogue on the given topic:", AnswerLines: 22,
		},
		{
			QNumber: 6, Title: "Change of Voice (Active / Passive)", Instruction: "Change the voice of the following sentences.",
			MarksFormula: "5 Marks", TotalMarks: 5, TotalQuestions: 5, AttemptCount: 5, MarksPerQuestion: 1,
			Type: SectionWriting, WritingPrompt: "Change the voice of the following sentences:", AnswerLines: 10,
		},
		{
			QNumber: 7, Title: "Translation (Urdu to English)", Instruction: "Translate the following sentences into English.",
			MarksFormula: "5 Marks", TotalMarks: 5, TotalQuestions: 5, AttemptCount: 5, MarksPerQuestion: 1,
			Type: SectionWriting, WritingPrompt: "Translate the following sentences from Urdu into English:", AnswerLines: 10,
		},
	},
}

var interScience = PaperPattern{
	ClassGroup:  "intermediate",
	Subject:     "Science",
	TotalMarks:  85,
	TimeAllowed: "3 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "17 × 1 = 17", TotalMarks: 17, TotalQuestions: 17, AttemptCount: 17, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 8 short questions.",
			MarksFormula: "8 × 2 = 16", TotalMarks: 16, TotalQuestions: 12, AttemptCount: 8, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions", Instruction: "Attempt any 8 short questions.",
			MarksFormula: "8 × 2 = 16", TotalMarks: 16, TotalQuestions: 12, AttemptCount: 8, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Long Questions", Instruction: "Attempt any 3 questions.",
			MarksFormula: "3 × 8 = 24", TotalMarks: 24, TotalQuestions: 5, AttemptCount: 3, MarksPerQuestion: 8,
			Type: SectionLong, HasSubParts: true, SubPartAMarks: 4, SubPartBMarks: 4,
		},
	},
}

var interComputer = PaperPattern{
	ClassGroup:  "intermediate",
	Subject:     "Computer",
	TotalMarks:  75,
	TimeAllowed: "3 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "15 × 1 = 15", TotalMarks: 15, TotalQuestions: 15, AttemptCount: 15, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Long Questions", Instruction: "Attempt any 3 questions.",
			MarksFormula: "3 × 8 = 24", TotalMarks: 24, TotalQuestions: 5, AttemptCount: 3, MarksPerQuestion: 8,
			Type: SectionLong,
		},
	},
}

var interMathematics = PaperPattern{
	ClassGroup:  "intermediate",
	Subject:     "Mathematics",
	TotalMarks:  100,
	TimeAllowed: "3 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "20 × 1 = 20", TotalMarks: 20, TotalQuestions: 20, AttemptCount: 20, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 8 short questions.",
			MarksFormula: "8 × 2 = 16", TotalMarks: 16, TotalQuestions: 12, AttemptCount: 8, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions", Instruction: "Attempt any 8 short questions.",
			MarksFormula: "8 × 2 = 16", TotalMarks: 16, TotalQuestions: 12, AttemptCount: 8, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions", Instruction: "Attempt any 9 short questions.",
			MarksFormula: "9 × 2 = 18", TotalMarks: 18, TotalQuestions: 13, AttemptCount: 9, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Long Questions", Instruction: "Attempt any 3 questions.",
			MarksFormula: "3 × 10 = 30", TotalMarks: 30, TotalQuestions: 5, AttemptCount: 3, MarksPerQuestion: 10,
			Type: SectionLong, HasSubParts: true, SubPartAMarks: 5, SubPartBMarks: 5,
		},
	},
}

var interEnglish = PaperPattern{
	ClassGroup:  "intermediate",
	Subject:     "English",
	TotalMarks:  100,
	TimeAllowed: "3 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Choose the correct answer. (Synonyms / Prepositions / Grammar)",
			MarksFormula: "20 × 1 = 20", TotalMarks: 20, TotalQuestions: 20, AttemptCount: 20, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions (Book I / II — Prose)", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Short Questions (Plays / Heroes)", Instruction: "Attempt any 6 short questions.",
			MarksFormula: "6 × 2 = 12", TotalMarks: 12, TotalQuestions: 9, AttemptCount: 6, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 4, Title: "Short Questions (Poems / Novel)", Instruction: "Attempt any 4 short questions.",
			MarksFormula: "4 × 2 = 8", TotalMarks: 8, TotalQuestions: 6, AttemptCount: 4, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 5, Title: "Letter / Application Writing", Instruction: "Write a letter / application on the given topic.",
			MarksFormula: "10 Marks", TotalMarks: 10, TotalQuestions: 1, AttemptCount: 1, MarksPerQuestion: 10,
			Type: SectionWriting, WritingPrompt: "Write a letter / application on the given topic:", AnswerLines: 16,
		},
		{
			QNumber: 6, Title: "Story Writing", Instruction: "Write a story on the given topic.",
			MarksFormula: "10 Marks", TotalMarks: 10, TotalQuestions: 1, AttemptCount: 1, MarksPerQuestion: 10,
			Type: SectionWriting, WritingPrompt: "Write a story on the given topic:", AnswerLines: 16,
		},
		{
			QNumber: 7, Title: "Explanation with Reference to Context", Instruction: "Explain the following stanza with reference to the context.",
			MarksFormula: "5 Marks", TotalMarks: 5, TotalQuestions: 1, AttemptCount: 1, MarksPerQuestion: 5,
			Type: SectionWriting, WritingPrompt: "Explain the following stanza with reference to the context:", AnswerLines: 10,
		},
		{
			QNumber: 8, Title: "Punctuation / Translation of Passage", Instruction: "Punctuate the passage OR translate into Urdu.",
			MarksFormula: "15 Marks", TotalMarks: 15, TotalQuestions: 1, AttemptCount: 1, MarksPerQuestion: 15,
			Type: SectionWriting, WritingPrompt: "Punctuate the following passage OR translate it into Urdu:", AnswerLines: 20,
		},
	},
}

// genericDefault keeps the renderer producible for any unmapped
// class/subject pair: 12 mcq, attempt 5 of 8 short, attempt 2 of 3 long.
var genericDefault = PaperPattern{
	ClassGroup:  "generic",
	Subject:     "General",
	TotalMarks:  32,
	TimeAllowed: "2 Hours",
	Sections: []QuestionSection{
		{
			QNumber: 1, Title: "Objective (MCQs)", Instruction: "Circle the correct answer.",
			MarksFormula: "12 × 1 = 12", TotalMarks: 12, TotalQuestions: 12, AttemptCount: 12, MarksPerQuestion: 1,
			Type: SectionMCQ,
		},
		{
			QNumber: 2, Title: "Short Questions", Instruction: "Attempt any 5 short questions.",
			MarksFormula: "5 × 2 = 10", TotalMarks: 10, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2,
			Type: SectionShort,
		},
		{
			QNumber: 3, Title: "Long Questions", Instruction: "Attempt any 2 questions.",
			MarksFormula: "2 × 5 = 10", TotalMarks: 10, TotalQuestions: 3, AttemptCount: 2, MarksPerQuestion: 5,
			Type: SectionLong,
		},
	},
}
