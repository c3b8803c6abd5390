package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plot-editor-be/internal/constant"
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/pkg/llm"
	"plot-editor-be/pkg/summary"
	"plot-editor-be/pkg/tiptap"
)

type testLogger struct{}

var _ logger.ILogger = testLogger{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type stubStore struct {
	works      map[uuid.UUID]*entity.Work
	episodes   map[uuid.UUID]*entity.Episode
	plots      map[uuid.UUID]*entity.Plot
	characters map[uuid.UUID]*entity.Character
	relations  []*entity.Relation
	docs       map[string][]tiptap.Node
}

func newStubStore() *stubStore {
	return &stubStore{
		works:      map[uuid.UUID]*entity.Work{},
		episodes:   map[uuid.UUID]*entity.Episode{},
		plots:      map[uuid.UUID]*entity.Plot{},
		characters: map[uuid.UUID]*entity.Character{},
		docs:       map[string][]tiptap.Node{},
	}
}

func (s *stubStore) Work(ctx context.Context, userId, workId uuid.UUID) (*entity.Work, error) {
	return s.works[workId], nil
}

func (s *stubStore) Episode(ctx context.Context, userId, episodeId uuid.UUID) (*entity.Episode, error) {
	return s.episodes[episodeId], nil
}

func (s *stubStore) Plot(ctx context.Context, userId, plotId uuid.UUID) (*entity.Plot, error) {
	return s.plots[plotId], nil
}

func (s *stubStore) Character(ctx context.Context, userId, characterId uuid.UUID) (*entity.Character, error) {
	return s.characters[characterId], nil
}

func (s *stubStore) Episodes(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Episode, error) {
	var out []*entity.Episode
	for _, ep := range s.episodes {
		if ep.WorkId == workId {
			out = append(out, ep)
		}
	}
	return out, nil
}

func (s *stubStore) Plots(ctx context.Context, userId, episodeId uuid.UUID) ([]*entity.Plot, error) {
	var out []*entity.Plot
	for _, p := range s.plots {
		if p.EpisodeId == episodeId {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) Characters(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Character, error) {
	var out []*entity.Character
	for _, c := range s.characters {
		if c.WorkId == workId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubStore) Relations(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Relation, error) {
	return s.relations, nil
}

func (s *stubStore) Document(ctx context.Context, key string) ([]tiptap.Node, error) {
	doc, ok := s.docs[key]
	if !ok {
		return nil, errors.New("document missing")
	}
	return doc, nil
}

type stubProvider struct {
	reply       string
	err         error
	lastHistory []llm.Message
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.lastHistory = history
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
}

func newTestService(store *stubStore, provider *stubProvider) ISummaryService {
	aggregator := summary.NewAggregator(store, testLogger{})
	assembler := summary.NewAssembler(summary.NewBudget("no-such-model", 0))
	return NewSummaryService(store, aggregator, assembler, provider, time.Second, testLogger{})
}

func paragraph(text string) []tiptap.Node {
	return []tiptap.Node{
		{Type: "paragraph", Content: []tiptap.Node{{Type: tiptap.NodeTypeText, Text: text}}},
	}
}

func TestSummarizePlotNotFound(t *testing.T) {
	svc := newTestService(newStubStore(), &stubProvider{})

	_, err := svc.SummarizePlot(context.Background(), uuid.New(), uuid.New(), nil)

	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestSummarizePlotWithoutContent(t *testing.T) {
	store := newStubStore()
	plot := &entity.Plot{Id: uuid.New(), Title: "Scene A"}
	store.plots[plot.Id] = plot

	svc := newTestService(store, &stubProvider{})
	_, err := svc.SummarizePlot(context.Background(), uuid.New(), plot.Id, nil)

	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}

func TestSummarizePlotGeneratesFromDocument(t *testing.T) {
	store := newStubStore()
	plot := &entity.Plot{Id: uuid.New(), Title: "Scene A", ContentKey: "plots/u/p.json"}
	store.plots[plot.Id] = plot
	store.docs[plot.ContentKey] = paragraph("Mira crosses the bridge at night.")

	provider := &stubProvider{reply: "  Mira makes her crossing. \n"}
	svc := newTestService(store, provider)

	res, err := svc.SummarizePlot(context.Background(), uuid.New(), plot.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mira makes her crossing.", res.Summary)

	require.Len(t, provider.lastHistory, 2)
	assert.Equal(t, llm.RoleSystem, provider.lastHistory[0].Role)
	assert.Equal(t, llm.RoleUser, provider.lastHistory[1].Role)
	assert.Contains(t, provider.lastHistory[1].Content, "[Scene A]")
	assert.Contains(t, provider.lastHistory[1].Content, "Mira crosses the bridge at night.")
}

func TestSummarizeCharacterWithNoSignal(t *testing.T) {
	store := newStubStore()
	workId := uuid.New()
	store.works[workId] = &entity.Work{Id: workId, Title: "Novel", Type: constant.WorkTypePlot}
	character := &entity.Character{Id: uuid.New(), WorkId: workId, Name: "Mira", Properties: "{}", Memo: "  "}
	store.characters[character.Id] = character

	svc := newTestService(store, &stubProvider{})
	_, err := svc.SummarizeCharacter(context.Background(), uuid.New(), character.Id, nil)

	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}

func TestSummarizeCharacterMemoAloneIsEnough(t *testing.T) {
	store := newStubStore()
	workId := uuid.New()
	store.works[workId] = &entity.Work{Id: workId, Title: "Novel", Type: constant.WorkTypePlot}
	character := &entity.Character{Id: uuid.New(), WorkId: workId, Name: "Mira", Memo: "hates boats"}
	store.characters[character.Id] = character

	provider := &stubProvider{reply: "Mira, who hates boats."}
	svc := newTestService(store, provider)

	res, err := svc.SummarizeCharacter(context.Background(), uuid.New(), character.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mira, who hates boats.", res.Summary)
	assert.Contains(t, provider.lastHistory[1].Content, "Memo: hates boats")
}

func TestSummarizeWorkWithoutChapterSummaries(t *testing.T) {
	store := newStubStore()
	workId := uuid.New()
	store.works[workId] = &entity.Work{Id: workId, Title: "Novel", Type: constant.WorkTypePlot}

	svc := newTestService(store, &stubProvider{})
	_, err := svc.SummarizeWork(context.Background(), uuid.New(), workId, nil)

	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}

func TestSummarizeWorkRefinesPriorSummary(t *testing.T) {
	store := newStubStore()
	workId := uuid.New()
	store.works[workId] = &entity.Work{Id: workId, Title: "Novel", Type: constant.WorkTypePlot}
	ep := &entity.Episode{Id: uuid.New(), WorkId: workId, Title: "Episode One"}
	store.episodes[ep.Id] = ep
	plot := &entity.Plot{Id: uuid.New(), EpisodeId: ep.Id, Title: "Scene A", PlotSummary: "mira leaves"}
	store.plots[plot.Id] = plot

	provider := &stubProvider{reply: "updated story summary"}
	svc := newTestService(store, provider)

	res, err := svc.SummarizeWork(context.Background(), uuid.New(), workId, &dto.SummarizeRequest{
		PriorSummary: "the story so far",
	})
	require.NoError(t, err)
	assert.Equal(t, "updated story summary", res.Summary)

	content := provider.lastHistory[1].Content
	assert.True(t, strings.HasPrefix(content, "Previous summary:\nthe story so far"), content)
	assert.Contains(t, content, "[Scene A]\nmira leaves")
}

func TestSummarizeWorkNovelUsesChapterSummaries(t *testing.T) {
	store := newStubStore()
	workId := uuid.New()
	store.works[workId] = &entity.Work{Id: workId, Title: "Novel", Type: constant.WorkTypeNovel}
	ep := &entity.Episode{Id: uuid.New(), WorkId: workId, Title: "Chapter One", ChapterSummary: "the setup"}
	store.episodes[ep.Id] = ep

	provider := &stubProvider{reply: "overall summary"}
	svc := newTestService(store, provider)

	_, err := svc.SummarizeWork(context.Background(), uuid.New(), workId, nil)
	require.NoError(t, err)
	assert.Contains(t, provider.lastHistory[1].Content, "[Chapter One]\nthe setup")
}

func TestSummarizeEpisodeUpstreamFailure(t *testing.T) {
	store := newStubStore()
	workId := uuid.New()
	ep := &entity.Episode{Id: uuid.New(), WorkId: workId, Title: "Episode One"}
	store.episodes[ep.Id] = ep
	plot := &entity.Plot{Id: uuid.New(), EpisodeId: ep.Id, Title: "Scene A", ContentKey: "plots/u/p.json"}
	store.plots[plot.Id] = plot
	store.docs[plot.ContentKey] = paragraph("some text")

	provider := &stubProvider{err: errors.New("connection refused")}
	svc := newTestService(store, provider)

	_, err := svc.SummarizeEpisode(context.Background(), uuid.New(), ep.Id, nil)

	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.Code)
	assert.ErrorContains(t, err, "connection refused")
}