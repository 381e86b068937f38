package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-career-guide/internal/document"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/mock"
	"github.com/MKhiriev/go-career-guide/internal/oracle"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/internal/validators"
	"github.com/MKhiriev/go-career-guide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/genai"
)

type advisorMocks struct {
	repo     *mock.MockProfileRepository
	oracle   *mock.MockOracle
	renderer *mock.MockResumeRenderer
}

func newTestAdvisorSvc(t *testing.T, ctrl *gomock.Controller) (AdvisorService, advisorMocks) {
	t.Helper()
	m := advisorMocks{
		repo:     mock.NewMockProfileRepository(ctrl),
		oracle:   mock.NewMockOracle(ctrl),
		renderer: mock.NewMockResumeRenderer(ctrl),
	}
	svc := NewAdvisorService(m.repo, m.oracle, oracle.NewDecoder(validators.NewStructValidator()), m.renderer, logger.Nop())
	return svc, m
}

func fullProfile() models.Profile {
	return models.Profile{
		User: models.User{
			ID:           "user-1",
			Email:        "alice@example.com",
			Name:         "Alice Doe",
			PasswordHash: strPtr("$2a$10$secret-hash-never-sent"),
			Interests:    []string{"cloud"},
		},
		Skills:      []models.Skill{{Name: "Go", Level: "Advanced"}, {Name: "SQL", Level: "Intermediate"}},
		CareerPaths: []models.CareerPath{{Title: "Backend Engineer", Summary: "APIs"}},
		Resume: &models.Resume{
			Summary:    "Engineer",
			Education:  "BSc",
			Experience: "3 years",
		},
	}
}

const jobsJSON = `{"jobs":[{"title":"Go Developer","company":"Acme","description":"APIs","requirements":"Go","application_link":"https://acme.example/jobs/1"}]}`

// ── RecommendJobs ────────────────────────────────────────────────────────────

func TestAdvisorService_RecommendJobs_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
			assert.Contains(t, prompt, "suggest 5 relevant job or internship opportunities")
			assert.Contains(t, prompt, "Backend Engineer")
			assert.NotContains(t, prompt, "secret-hash-never-sent")
			assert.Equal(t, []string{"jobs"}, schema.Required)
			return []byte(jobsJSON), nil
		},
	)

	got, err := svc.RecommendJobs(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, got.Jobs, 1)
	assert.Equal(t, "Acme", got.Jobs[0].Company)
	assert.Empty(t, got.Message)
}

func TestAdvisorService_RecommendJobs_InsufficientProfile(t *testing.T) {
	noSkills := fullProfile()
	noSkills.Skills = nil
	noPaths := fullProfile()
	noPaths.CareerPaths = nil

	tests := []struct {
		name    string
		profile models.Profile
		err     error
	}{
		{"unknown user", models.Profile{}, store.ErrUserNotFound},
		{"no skills", noSkills, nil},
		{"no career paths", noPaths, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAdvisorSvc(t, ctrl)

			m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(tt.profile, tt.err)
			m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			got, err := svc.RecommendJobs(context.Background(), "user-1")

			require.NoError(t, err)
			assert.Equal(t, models.JobsResult{Message: models.MessageInsufficientProfile}, got)
		})
	}
}

func TestAdvisorService_RecommendJobs_OracleErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		callErr error
		wantErr error
	}{
		{"unavailable", nil, oracle.ErrOracleUnavailable, oracle.ErrOracleUnavailable},
		{"not json", []byte("Sorry, I cannot help with that."), nil, oracle.ErrOracleOutputInvalid},
		{"schema violation", []byte(`{"jobs":[{"title":"Go Developer"}]}`), nil, oracle.ErrOracleOutputInvalid},
		{"missing list", []byte(`{}`), nil, oracle.ErrOracleOutputInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAdvisorSvc(t, ctrl)

			m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
			m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.raw, tt.callErr)

			_, err := svc.RecommendJobs(context.Background(), "user-1")

			require.ErrorIs(t, err, tt.wantErr)
			if tt.raw != nil {
				assert.NotContains(t, err.Error(), string(tt.raw))
			}
		})
	}
}

func TestAdvisorService_RecommendJobs_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(models.Profile{}, store.ErrStorageUnavailable)

	_, err := svc.RecommendJobs(context.Background(), "user-1")

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

// ── RecommendResources ───────────────────────────────────────────────────────

func TestAdvisorService_RecommendResources_FencedOutputRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string, _ *genai.Schema) ([]byte, error) {
			assert.Contains(t, prompt, "recommend 5 to 7 high-quality learning resources")
			return []byte("```json\n" + `{"resources":[{"type":"course","title":"Go by Example","link":"https://gobyexample.com","description":"Hands-on"}]}` + "\n```"), nil
		},
	)

	got, err := svc.RecommendResources(context.Background(), "user-1")

	assert.ErrorIs(t, err, oracle.ErrOracleOutputInvalid)
	assert.Empty(t, got.Resources)
}

func TestAdvisorService_RecommendResources_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		[]byte(`{"resources":[{"type":"course","title":"Go by Example","link":"https://gobyexample.com","description":"Hands-on"}]}`), nil,
	)

	got, err := svc.RecommendResources(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, got.Resources, 1)
	assert.Equal(t, "Go by Example", got.Resources[0].Title)
}

func TestAdvisorService_RecommendResources_NoUserData(t *testing.T) {
	noSkills := fullProfile()
	noSkills.Skills = []models.Skill{}
	noPaths := fullProfile()
	noPaths.CareerPaths = nil

	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "ghost").Return(models.Profile{}, store.ErrUserNotFound)
	m.repo.EXPECT().GetProfile(gomock.Any(), "no-skills").Return(noSkills, nil)

	for _, id := range []string{"ghost", "no-skills"} {
		got, err := svc.RecommendResources(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, models.MessageNoUserData, got.Message)
	}

	// Career paths are not required for resources.
	m.repo.EXPECT().GetProfile(gomock.Any(), "no-paths").Return(noPaths, nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, oracle.ErrOracleUnavailable)
	_, err := svc.RecommendResources(context.Background(), "no-paths")
	assert.ErrorIs(t, err, oracle.ErrOracleUnavailable)
}

// ── AnalyzeSkills ────────────────────────────────────────────────────────────

func TestAdvisorService_AnalyzeSkills_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(`{
		"summary": "Solid backend base",
		"skills_analysis": [{
			"skill_name": "Go",
			"current_level": "Advanced",
			"strengths": ["concurrency"],
			"improvements": ["generics"],
			"recommended_learning_paths": ["Go internals"]
		}],
		"suggested_next_skills": ["Kubernetes"]
	}`), nil)

	got, err := svc.AnalyzeSkills(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Solid backend base", got.Summary)
	require.Len(t, got.SkillsAnalysis, 1)
	assert.Equal(t, models.SkillLevelAdvanced, got.SkillsAnalysis[0].CurrentLevel)
}

func TestAdvisorService_AnalyzeSkills_UnknownLevelRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(`{
		"summary": "x",
		"skills_analysis": [{"skill_name":"Go","current_level":"Guru","strengths":[],"improvements":[],"recommended_learning_paths":[]}],
		"suggested_next_skills": []
	}`), nil)

	_, err := svc.AnalyzeSkills(context.Background(), "user-1")

	assert.ErrorIs(t, err, oracle.ErrOracleOutputInvalid)
}

func TestAdvisorService_AnalyzeSkills_NoSkills(t *testing.T) {
	noSkills := fullProfile()
	noSkills.Skills = nil

	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "ghost").Return(models.Profile{}, store.ErrUserNotFound)
	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(noSkills, nil)

	_, err := svc.AnalyzeSkills(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoSkillsFound)

	_, err = svc.AnalyzeSkills(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNoSkillsFound)
}

// ── BuildResume ──────────────────────────────────────────────────────────────

const enhancedJSON = `{"summary":"Seasoned engineer","education":"BSc CS","experience":"3 years of Go","skills":["Go","SQL"],"highlights":"Shipped v1"}`

func TestAdvisorService_BuildResume_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string, _ *genai.Schema) ([]byte, error) {
			assert.Contains(t, prompt, `"Go (Advanced)"`)
			assert.Contains(t, prompt, `"interests": [`)
			assert.Contains(t, prompt, "Backend Engineer")
			assert.NotContains(t, prompt, "secret-hash-never-sent")
			return []byte(enhancedJSON), nil
		},
	)
	m.renderer.EXPECT().Render(document.ResumeDocument{
		Name:  "Alice Doe",
		Email: "alice@example.com",
		Resume: models.EnhancedResume{
			Summary:    "Seasoned engineer",
			Education:  "BSc CS",
			Experience: "3 years of Go",
			Skills:     []string{"Go", "SQL"},
			Highlights: "Shipped v1",
		},
	}).Return([]byte("%PDF-1.3"), nil)

	got, err := svc.BuildResume(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Alice Doe_Resume.pdf", got.FileName)
	assert.Equal(t, []byte("%PDF-1.3"), got.Document)
	assert.Empty(t, got.Status)
}

func TestAdvisorService_BuildResume_Incomplete(t *testing.T) {
	noResume := fullProfile()
	noResume.Resume = nil
	noEducation := fullProfile()
	noEducation.Resume.Education = ""

	for name, profile := range map[string]models.Profile{"no resume": noResume, "empty section": noEducation} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAdvisorSvc(t, ctrl)

			m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)

			got, err := svc.BuildResume(context.Background(), "user-1")

			require.NoError(t, err)
			assert.Equal(t, models.StatusResumeIncomplete, got.Status)
			assert.Nil(t, got.Document)
		})
	}
}

func TestAdvisorService_BuildResume_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "ghost").Return(models.Profile{}, store.ErrUserNotFound)

	_, err := svc.BuildResume(context.Background(), "ghost")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAdvisorService_BuildResume_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdvisorSvc(t, ctrl)

	m.repo.EXPECT().GetProfile(gomock.Any(), "user-1").Return(fullProfile(), nil)
	m.oracle.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(enhancedJSON), nil)
	m.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("font missing"))

	_, err := svc.BuildResume(context.Background(), "user-1")

	assert.ErrorIs(t, err, ErrResumeRenderingFailed)
}

func TestAdvisorService_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAdvisorSvc(t, ctrl)

	_, err := svc.RecommendJobs(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
