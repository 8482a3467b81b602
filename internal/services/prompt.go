package services

import "fmt"

// OCRInstruction is the fixed instruction sent with resume images.
const OCRInstruction = "You are an expert OCR (Optical Character Recognition) service. Extract all text from the following image of a resume."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScoringPrompt creates the prompt for matching one resume against the
// job description. The response shape is enforced separately through the
// structured-generation schema.
func (pb *PromptBuilder) BuildScoringPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert HR professional and data extraction specialist.
Your task is to analyze the following resume against the provided job description.

Job Description:
---
%s
---

Resume:
---
%s
---

Based on your analysis, provide the following in JSON format:
1. "name": The full name of the candidate. If not found, return "Not Found".
2. "email": The candidate's email address. If not found, return "Not Found".
3. "phone": The candidate's phone number. If not found, return "Not Found".
4. "score": A relevance score from 0 to 100 compared to the job description.
5. "justification": A brief, one-sentence justification for the score.
6. "location": The candidate's location (City and State, if available). If not found, return "Not Found".
7. "matching_keywords": A list of the top 3-5 keywords from the job description found in the resume.`,
		jobDescription, resumeText)
}
