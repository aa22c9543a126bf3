package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"portfolioapi/internal/model"
)

type MockContentWriter struct {
	mock.Mock
}

func (m *MockContentWriter) UpsertProfile(ctx context.Context, p *model.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockContentWriter) UpsertSiteText(ctx context.Context, t *model.SiteText) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockContentWriter) CreateStat(ctx context.Context, s *model.HighlightStat) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockContentWriter) CreateStory(ctx context.Context, s *model.StoryItem) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockContentWriter) CreateExperience(ctx context.Context, e *model.ExperienceItem) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockContentWriter) CreateEducation(ctx context.Context, e *model.EducationItem) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockContentWriter) CreateProgram(ctx context.Context, p *model.ProgramItem) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockContentWriter) CreateSkill(ctx context.Context, s *model.SkillItem) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockContentWriter) CreatePublication(ctx context.Context, p *model.PublicationItem) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockContentWriter) CreateIdea(ctx context.Context, i *model.IdeaItem) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockContentWriter) CreateMedia(ctx context.Context, a *model.MediaAsset) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockContentWriter) CreateBlog(ctx context.Context, b *model.BlogItem) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockContentWriter) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
