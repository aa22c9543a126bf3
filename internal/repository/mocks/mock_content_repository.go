package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

type MockContentReader struct {
	mock.Mock
}

func (m *MockContentReader) GetProfile(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockContentReader) GetSiteText(ctx context.Context, key model.SiteTextKey) (*model.SiteText, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteText), args.Error(1)
}

func (m *MockContentReader) ListStats(ctx context.Context) ([]model.HighlightStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HighlightStat), args.Error(1)
}

func (m *MockContentReader) ListStory(ctx context.Context) ([]model.StoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoryItem), args.Error(1)
}

func (m *MockContentReader) ListExperience(ctx context.Context) ([]model.ExperienceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExperienceItem), args.Error(1)
}

func (m *MockContentReader) ListEducation(ctx context.Context) ([]model.EducationItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EducationItem), args.Error(1)
}

func (m *MockContentReader) ListPrograms(ctx context.Context) ([]model.ProgramItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProgramItem), args.Error(1)
}

func (m *MockContentReader) ListSkills(ctx context.Context) ([]model.SkillItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillItem), args.Error(1)
}

func (m *MockContentReader) ListPublications(ctx context.Context) ([]model.PublicationItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PublicationItem), args.Error(1)
}

func (m *MockContentReader) ListIdeas(ctx context.Context) ([]model.IdeaItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IdeaItem), args.Error(1)
}

func (m *MockContentReader) ListMedia(ctx context.Context) ([]model.MediaAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaAsset), args.Error(1)
}

func (m *MockContentReader) ListBlogs(ctx context.Context, filter repository.BlogFilter) ([]model.BlogItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogItem), args.Error(1)
}
