package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-career-guide/internal/document"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/oracle"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/models"
	"google.golang.org/genai"
)

// advisorService answers the career guidance endpoints. Each call reads the
// profile, checks that it holds enough data, asks the oracle with a fixed
// prompt and schema and decodes the answer into a typed result.
type advisorService struct {
	profileRepository store.ProfileRepository
	oracle            oracle.Oracle
	decoder           *oracle.Decoder
	renderer          document.ResumeRenderer

	logger *logger.Logger
}

func NewAdvisorService(
	profileRepository store.ProfileRepository,
	oracleClient oracle.Oracle,
	decoder *oracle.Decoder,
	renderer document.ResumeRenderer,
	logger *logger.Logger,
) AdvisorService {
	return &advisorService{
		profileRepository: profileRepository,
		oracle:            oracleClient,
		decoder:           decoder,
		renderer:          renderer,
		logger:            logger,
	}
}

// RecommendJobs suggests jobs matching the user's skills and career paths.
// A missing user or a profile without skills or career paths yields the
// insufficient_profile message and no oracle call.
func (a *advisorService) RecommendJobs(ctx context.Context, userID string) (models.JobsResult, error) {
	profile, found, err := a.loadProfile(ctx, userID)
	if err != nil {
		return models.JobsResult{}, err
	}
	if !found || len(profile.Skills) == 0 || len(profile.CareerPaths) == 0 {
		return models.JobsResult{Message: models.MessageInsufficientProfile}, nil
	}

	var result models.JobsResult
	if err = a.ask(ctx, jobsPrompt, profile, oracle.JobsSchema(), &result); err != nil {
		return models.JobsResult{}, err
	}
	return result, nil
}

// RecommendResources suggests learning resources. A missing user or a
// profile without skills yields the no_user_data message and no oracle call.
func (a *advisorService) RecommendResources(ctx context.Context, userID string) (models.ResourcesResult, error) {
	profile, found, err := a.loadProfile(ctx, userID)
	if err != nil {
		return models.ResourcesResult{}, err
	}
	if !found || len(profile.Skills) == 0 {
		return models.ResourcesResult{Message: models.MessageNoUserData}, nil
	}

	var result models.ResourcesResult
	if err = a.ask(ctx, resourcesPrompt, profile, oracle.ResourcesSchema(), &result); err != nil {
		return models.ResourcesResult{}, err
	}
	return result, nil
}

// AnalyzeSkills returns a structured growth analysis of the user's skills.
// Returns ErrNoSkillsFound when the user is missing or has no skills.
func (a *advisorService) AnalyzeSkills(ctx context.Context, userID string) (models.SkillAnalysis, error) {
	profile, found, err := a.loadProfile(ctx, userID)
	if err != nil {
		return models.SkillAnalysis{}, err
	}
	if !found || len(profile.Skills) == 0 {
		return models.SkillAnalysis{}, ErrNoSkillsFound
	}

	var result models.SkillAnalysis
	if err = a.ask(ctx, skillsPrompt, profile, oracle.SkillAnalysisSchema(), &result); err != nil {
		return models.SkillAnalysis{}, err
	}
	return result, nil
}

// BuildResume enhances the stored resume and renders it to PDF.
//
// Returns store.ErrUserNotFound for a missing user and the incomplete status
// when the resume is absent or a section is empty.
func (a *advisorService) BuildResume(ctx context.Context, userID string) (models.ResumeResult, error) {
	log := logger.FromContext(ctx)

	profile, found, err := a.loadProfile(ctx, userID)
	if err != nil {
		return models.ResumeResult{}, err
	}
	if !found {
		return models.ResumeResult{}, store.ErrUserNotFound
	}
	if !profile.Resume.IsComplete() {
		return models.ResumeResult{Status: models.StatusResumeIncomplete}, nil
	}

	var enhanced models.EnhancedResume
	if err = a.ask(ctx, resumePrompt, newResumeInput(profile), oracle.EnhancedResumeSchema(), &enhanced); err != nil {
		return models.ResumeResult{}, err
	}

	pdf, err := a.renderer.Render(document.ResumeDocument{
		Name:   profile.Name,
		Email:  profile.Email,
		Resume: enhanced,
	})
	if err != nil {
		log.Err(err).Msg("resume rendering failed")
		return models.ResumeResult{}, fmt.Errorf("%w: %w", ErrResumeRenderingFailed, err)
	}

	return models.ResumeResult{
		FileName: document.ResumeFileName(profile.Name),
		Document: pdf,
	}, nil
}

// loadProfile reads the profile of userID. found is false when the user
// does not exist; any other storage failure is returned.
func (a *advisorService) loadProfile(ctx context.Context, userID string) (models.Profile, bool, error) {
	if userID == "" {
		return models.Profile{}, false, ErrInvalidDataProvided
	}

	profile, err := a.profileRepository.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("profile read failed")
		return models.Profile{}, false, fmt.Errorf("profile read failed: %w", err)
	}

	return profile, true, nil
}

func (a *advisorService) ask(ctx context.Context, template string, data any, schema *genai.Schema, dst any) error {
	log := logger.FromContext(ctx)

	prompt, err := buildPrompt(template, data)
	if err != nil {
		return err
	}

	raw, err := a.oracle.Generate(ctx, prompt, schema)
	if err != nil {
		log.Err(err).Msg("oracle call failed")
		return fmt.Errorf("oracle call failed: %w", err)
	}

	if err = a.decoder.Decode(ctx, raw, dst); err != nil {
		log.Err(err).Int("response_bytes", len(raw)).Msg("oracle answer rejected")
		return err
	}

	return nil
}
