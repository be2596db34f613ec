package interview

import "fmt"

// BuildPrompt renders the question-generation prompt for p. The answer is read
// aloud by a voice assistant, so the model is told to avoid "/" and "*" and to
// reply with a bare JSON array of question strings.
func BuildPrompt(p Params) string {
	return fmt.Sprintf(`Prepare questions for a job interview.
The job role is %s.
The job experience level is %s.
The tech stack used in the job is: %s.
The focus between behavioural and technical questions should lean towards: %s.
The amount of questions required is: %s.
Please return only the questions, without any additional text.
The questions are going to be read by a voice assistant so do not use "/" or "*" or any other special characters which might break the voice assistant.
Return the questions formatted like this:
["Question 1", "Question 2", "Question 3"]

Thank you! <3
`, p.Role, p.Level, p.TechStack, p.Type, p.Amount)
}
