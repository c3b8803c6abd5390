package service

import (
	"context"
	"strings"
	"time"

	"plot-editor-be/internal/constant"
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/pkg/llm"
	"plot-editor-be/pkg/summary"

	"github.com/google/uuid"
)

type ISummaryService interface {
	SummarizeCharacter(ctx context.Context, userId, characterId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
	SummarizeWork(ctx context.Context, userId, workId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
	SummarizeEpisode(ctx context.Context, userId, episodeId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
	SummarizePlot(ctx context.Context, userId, plotId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
}

// summaryService orchestrates one summarization round-trip: resolve the
// target, aggregate its signal, assemble a bounded prompt and invoke the
// text-generation backend. The result is returned to the caller, never
// persisted here; the client stores it through the normal update endpoints.
type summaryService struct {
	store      summary.Store
	aggregator *summary.Aggregator
	assembler  *summary.Assembler
	provider   llm.LLMProvider
	timeout    time.Duration
	log        logger.ILogger
}

func NewSummaryService(
	store summary.Store,
	aggregator *summary.Aggregator,
	assembler *summary.Assembler,
	provider llm.LLMProvider,
	timeout time.Duration,
	log logger.ILogger,
) ISummaryService {
	return &summaryService{
		store:      store,
		aggregator: aggregator,
		assembler:  assembler,
		provider:   provider,
		timeout:    timeout,
		log:        log,
	}
}

func revisionOf(req *dto.SummarizeRequest) summary.Revision {
	if req == nil {
		return summary.FreshRevision()
	}
	return summary.Refine(req.PriorSummary)
}

func (s *summaryService) SummarizeCharacter(ctx context.Context, userId, characterId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	character, err := s.store.Character(ctx, userId, characterId)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, serverutils.NewNotFoundError("character not found")
	}

	work, err := s.store.Work(ctx, userId, character.WorkId)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}

	signal, err := s.aggregator.CollectCharacterSignal(ctx, userId, work.Id, character.Name, work.Type)
	if err != nil {
		return nil, err
	}
	relations, err := s.aggregator.CollectRelationFacts(ctx, userId, work.Id, characterId)
	if err != nil {
		return nil, err
	}

	if signal.Empty() &&
		strings.TrimSpace(character.Memo) == "" &&
		len(relations) == 0 &&
		!hasProperties(character.Properties) {
		return nil, serverutils.NewNoContentError("nothing to summarize for this character yet")
	}

	prompt := s.assembler.CharacterPrompt(summary.CharacterInput{
		Name:       character.Name,
		Properties: character.Properties,
		Memo:       character.Memo,
		Relations:  relations,
		Signal:     signal,
	}, revisionOf(req))

	return s.generate(ctx, "character", characterId, prompt)
}

func (s *summaryService) SummarizeWork(ctx context.Context, userId, workId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	work, err := s.store.Work(ctx, userId, workId)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}

	var summaries []summary.TitledSummary
	if work.Type == constant.WorkTypeNovel {
		summaries, err = s.aggregator.CollectChapterSummaries(ctx, userId, workId)
	} else {
		summaries, err = s.aggregator.CollectPlotSummaries(ctx, userId, workId)
	}
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, serverutils.NewNoContentError("no chapter summaries exist yet; summarize chapters first")
	}

	prompt := s.assembler.WorkPrompt(summaries, revisionOf(req))
	return s.generate(ctx, "work", workId, prompt)
}

func (s *summaryService) SummarizeEpisode(ctx context.Context, userId, episodeId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	episode, err := s.store.Episode(ctx, userId, episodeId)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, serverutils.NewNotFoundError("episode not found")
	}

	text, err := s.aggregator.CollectEpisodeText(ctx, userId, episodeId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, serverutils.NewNoContentError("episode has no content to summarize")
	}

	prompt := s.assembler.ChapterPrompt(episode.Title, text, revisionOf(req))
	return s.generate(ctx, "episode", episodeId, prompt)
}

func (s *summaryService) SummarizePlot(ctx context.Context, userId, plotId uuid.UUID, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	plot, err := s.store.Plot(ctx, userId, plotId)
	if err != nil {
		return nil, err
	}
	if plot == nil {
		return nil, serverutils.NewNotFoundError("plot not found")
	}

	text := s.aggregator.CollectPlotText(ctx, plot)
	if text == "" {
		return nil, serverutils.NewNoContentError("plot has no content to summarize")
	}

	prompt := s.assembler.ChapterPrompt(plot.Title, text, revisionOf(req))
	return s.generate(ctx, "plot", plotId, prompt)
}

func (s *summaryService) generate(ctx context.Context, kind string, id uuid.UUID, prompt summary.Prompt) (*dto.SummarizeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	history := []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.Instruction},
		{Role: llm.RoleUser, Content: prompt.Content},
	}
	out, err := s.provider.Chat(ctx, history)
	if err != nil {
		s.log.Error("SummaryService", "generation failed", map[string]interface{}{
			"kind":  kind,
			"id":    id,
			"error": err.Error(),
		})
		return nil, serverutils.NewUpstreamError("text generation failed", err)
	}

	return &dto.SummarizeResponse{Summary: strings.TrimSpace(out)}, nil
}

func hasProperties(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw != "" && raw != "{}" && raw != "null"
}
