package oracle

import "google.golang.org/genai"

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func stringListSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

// JobsSchema describes {jobs: [{title, company, description, requirements,
// application_link, deadline?}]}.
func JobsSchema() *genai.Schema {
	job := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":            stringSchema(""),
			"company":          stringSchema(""),
			"description":      stringSchema(""),
			"requirements":     stringSchema(""),
			"application_link": stringSchema("A placeholder or realistic-looking URL."),
			"deadline":         stringSchema("A date or 'N/A'."),
		},
		Required: []string{"title", "company", "description", "requirements", "application_link"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"jobs": {
				Type:        genai.TypeArray,
				Items:       job,
				Description: "An array of 5 suggested job or internship opportunities.",
			},
		},
		Required: []string{"jobs"},
	}
}

// ResourcesSchema describes {resources: [{type, title, link, description}]}.
func ResourcesSchema() *genai.Schema {
	resource := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"type":        stringSchema("e.g. Website, Video, Article, Course"),
			"title":       stringSchema(""),
			"link":        stringSchema(""),
			"description": stringSchema(""),
		},
		Required: []string{"type", "title", "link", "description"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"resources": {Type: genai.TypeArray, Items: resource},
		},
		Required: []string{"resources"},
	}
}

// SkillAnalysisSchema describes the structured skill growth analysis.
func SkillAnalysisSchema() *genai.Schema {
	assessment := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"skill_name": stringSchema(""),
			"current_level": {
				Type: genai.TypeString,
				Enum: []string{"Beginner", "Intermediate", "Advanced", "Expert"},
			},
			"strengths":                  stringListSchema(""),
			"improvements":               stringListSchema(""),
			"recommended_learning_paths": stringListSchema(""),
		},
		Required: []string{"skill_name", "current_level", "strengths", "improvements", "recommended_learning_paths"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": stringSchema("A short summary of the user's overall skill level."),
			"skills_analysis": {
				Type:        genai.TypeArray,
				Items:       assessment,
				Description: "Detailed breakdown of each skill with strengths and growth recommendations.",
			},
			"suggested_next_skills": stringListSchema("New or related skills to learn next."),
		},
		Required: []string{"summary", "skills_analysis", "suggested_next_skills"},
	}
}

// EnhancedResumeSchema describes the rewritten resume.
func EnhancedResumeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":    stringSchema(""),
			"education":  stringSchema(""),
			"experience": stringSchema(""),
			"skills":     stringListSchema(""),
			"highlights": stringSchema(""),
		},
		Required: []string{"summary", "education", "experience", "skills"},
	}
}
