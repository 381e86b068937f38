package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-career-guide/models"
)

const jobsPrompt = `You are a job recommendation assistant.
Based on this user's skills and career paths, suggest 5 relevant job or internship opportunities.
Return ONLY JSON that adheres to the provided schema. DO NOT include any markdown formatting.

User profile:
%s
`

const resourcesPrompt = `You are a learning resource assistant.
Given this user's skills and career paths, recommend 5 to 7 high-quality learning resources
such as websites, YouTube videos, online courses, or articles to help them improve or explore new topics.
Include only relevant and credible resources with short descriptions.

User data:
%s

Return only valid JSON following the schema.
`

const skillsPrompt = `You are a career and learning advisor AI.
The following user has these skills and career goals.
Provide a detailed skill growth analysis as structured JSON following the given schema.

User profile:
%s

Respond ONLY with valid JSON that matches the schema.
No markdown or explanations.
`

const resumePrompt = `You are a professional resume writing assistant.
Improve this user's resume by rewriting it in a professional, clear, and concise tone.
Enhance their summary, skills, and experience phrasing.
Also include a short "Career Highlights" section.

User Data:
%s

Return only valid JSON following the schema.
`

// resumeInput is the profile projection sent for resume enhancement.
type resumeInput struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Summary    string   `json:"summary"`
	Education  string   `json:"education"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
}

func newResumeInput(profile models.Profile) resumeInput {
	in := resumeInput{
		Name:       profile.Name,
		Email:      profile.Email,
		Summary:    profile.Resume.Summary,
		Education:  profile.Resume.Education,
		Experience: profile.Resume.Experience,
		Skills:     make([]string, 0, len(profile.Skills)),
		Interests:  make([]string, 0, len(profile.CareerPaths)),
	}
	for _, s := range profile.Skills {
		in.Skills = append(in.Skills, fmt.Sprintf("%s (%s)", s.Name, s.Level))
	}
	for _, c := range profile.CareerPaths {
		in.Interests = append(in.Interests, c.Title)
	}
	return in
}

// buildPrompt renders template with an indented JSON snapshot of data.
// models.User never serializes its password hash, so profiles are safe to
// embed as they are.
func buildPrompt(template string, data any) (string, error) {
	snapshot, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding prompt data: %w", err)
	}
	return fmt.Sprintf(template, snapshot), nil
}
