package models

// Job is a single job or internship suggestion.
type Job struct {
	Title           string `json:"title" validate:"required"`
	Company         string `json:"company" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements" validate:"required"`
	ApplicationLink string `json:"application_link" validate:"required"`
	Deadline        string `json:"deadline,omitempty"`
}

// JobsResult is either a list of suggestions or a guard message explaining
// why no suggestions were produced. Validation rules apply to oracle output
// only.
type JobsResult struct {
	Jobs    []Job  `json:"jobs,omitempty" validate:"required,dive"`
	Message string `json:"message,omitempty"`
}

// Resource is a learning resource suggestion.
type Resource struct {
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ResourcesResult is either a list of resources or a guard message.
type ResourcesResult struct {
	Resources []Resource `json:"resources,omitempty" validate:"required,dive"`
	Message   string     `json:"message,omitempty"`
}

// Skill levels accepted in a skill analysis.
const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelAdvanced     = "Advanced"
	SkillLevelExpert       = "Expert"
)

// SkillAssessment is the analysis of one of the user's skills.
type SkillAssessment struct {
	SkillName                string   `json:"skill_name" validate:"required"`
	CurrentLevel             string   `json:"current_level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Strengths                []string `json:"strengths" validate:"required"`
	Improvements             []string `json:"improvements" validate:"required"`
	RecommendedLearningPaths []string `json:"recommended_learning_paths" validate:"required"`
}

// SkillAnalysis is a structured growth analysis of the user's skills.
type SkillAnalysis struct {
	Summary             string            `json:"summary" validate:"required"`
	SkillsAnalysis      []SkillAssessment `json:"skills_analysis" validate:"required,dive"`
	SuggestedNextSkills []string          `json:"suggested_next_skills" validate:"required"`
}

// EnhancedResume is the rewritten resume content returned by the oracle.
type EnhancedResume struct {
	Summary    string   `json:"summary" validate:"required"`
	Education  string   `json:"education" validate:"required"`
	Experience string   `json:"experience" validate:"required"`
	Skills     []string `json:"skills" validate:"required"`
	Highlights string   `json:"highlights,omitempty"`
}

// ResumeResult is the outcome of a resume build. Document is set when the
// resume was rendered; Status is set when the profile is not ready for it.
type ResumeResult struct {
	Status   string `json:"status,omitempty"`
	FileName string `json:"-"`
	Document []byte `json:"-"`
}

// Guard messages returned instead of oracle output.
const (
	MessageInsufficientProfile = "insufficient_profile"
	MessageNoUserData          = "no_user_data"
	StatusResumeIncomplete     = "incomplete"
)
