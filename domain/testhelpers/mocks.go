package testhelpers

import (
	"context"

	"unionlotto/domain/entities"
	"unionlotto/domain/events"
	"unionlotto/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockSetRepository is a mock implementation of SetRepository
type MockSetRepository struct {
	mock.Mock
}

func (m *MockSetRepository) Append(ctx context.Context, sets ...*entities.LotterySet) error {
	args := m.Called(ctx, sets)
	return args.Error(0)
}

func (m *MockSetRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSetRepository) Snapshot(ctx context.Context) ([]*entities.LotterySet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LotterySet), args.Error(1)
}

func (m *MockSetRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockSuggestionProvider is a mock implementation of SuggestionProvider
type MockSuggestionProvider struct {
	mock.Mock
}

func (m *MockSuggestionProvider) GenerateLuckyNumbers(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockSuggestionProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockSuggestionService is a mock implementation of SuggestionService
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Suggest(ctx context.Context, userContext string) (*entities.LotterySet, error) {
	args := m.Called(ctx, userContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LotterySet), args.Error(1)
}

// MockLotterySession is a mock implementation of LotterySession used by the presentation layers
type MockLotterySession struct {
	mock.Mock
}

func (m *MockLotterySession) PickRandom(ctx context.Context, count int) ([]*entities.LotterySet, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LotterySet), args.Error(1)
}

func (m *MockLotterySession) SuggestLucky(ctx context.Context, userContext string) (*entities.LotterySet, error) {
	args := m.Called(ctx, userContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LotterySet), args.Error(1)
}

func (m *MockLotterySession) RequestClear(ctx context.Context) (interfaces.ClearResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(interfaces.ClearResult), args.Error(1)
}

func (m *MockLotterySession) History(ctx context.Context) ([]*entities.LotterySet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LotterySet), args.Error(1)
}

func (m *MockLotterySession) LatestBatch() []*entities.LotterySet {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entities.LotterySet)
}

func (m *MockLotterySession) Stats(ctx context.Context) ([]entities.NumberStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.NumberStat), args.Error(1)
}

func (m *MockLotterySession) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
