package summary

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"plot-editor-be/internal/constant"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/pkg/tiptap"
)

// DialogueLine is one extracted dialogue entry tagged with its origin in
// the work hierarchy.
type DialogueLine struct {
	EpisodeTitle string    `json:"episode_title"`
	PlotTitle    string    `json:"plot_title"`
	PlotId       uuid.UUID `json:"plot_id"`
	Text         string    `json:"dialogue_text"`
}

// ChapterText is one document's narrative text labeled with its episode,
// used for novel-type works where dialogue attribution does not exist.
type ChapterText struct {
	EpisodeTitle string
	Text         string
}

// CharacterSignal is the aggregated extraction result for one character.
// Exactly one of the two slices is populated, depending on the work type.
type CharacterSignal struct {
	Dialogues    []DialogueLine
	ChapterTexts []ChapterText
}

func (s *CharacterSignal) Empty() bool {
	return len(s.Dialogues) == 0 && len(s.ChapterTexts) == 0
}

// TitledSummary pairs a plot/episode title with its cached summary.
type TitledSummary struct {
	Title   string
	Summary string
}

// RelationFact is one rendered relationship edge with names resolved.
type RelationFact struct {
	FromName     string
	RelationName string
	ToName       string
}

// Aggregator resolves the transitive document set for a summarization
// request and reduces it to signal. It holds no mutable state; every method
// is safe for concurrent use.
type Aggregator struct {
	store Store
	log   logger.ILogger
}

func NewAggregator(store Store, log logger.ILogger) *Aggregator {
	return &Aggregator{
		store: store,
		log:   log,
	}
}

// CollectCharacterSignal walks every plot of the work in hierarchy order
// and extracts either dialogue lines for the named character (plot-type
// works) or full chapter text (novel-type works). A plot whose document
// cannot be fetched is logged and skipped; one broken document never aborts
// the aggregation.
func (a *Aggregator) CollectCharacterSignal(ctx context.Context, userId, workId uuid.UUID, characterName, workType string) (*CharacterSignal, error) {
	episodes, err := a.orderedEpisodes(ctx, userId, workId)
	if err != nil {
		return nil, err
	}

	signal := &CharacterSignal{}
	for _, ep := range episodes {
		plots, err := a.orderedPlots(ctx, userId, ep.Id)
		if err != nil {
			return nil, err
		}

		docs := a.fetchDocuments(ctx, plots)

		if workType == constant.WorkTypeNovel {
			for _, doc := range docs {
				text := strings.TrimSpace(tiptap.ExtractPlainText(doc))
				if text == "" {
					continue
				}
				signal.ChapterTexts = append(signal.ChapterTexts, ChapterText{
					EpisodeTitle: ep.Title,
					Text:         fmt.Sprintf("[%s] %s", ep.Title, text),
				})
			}
			continue
		}

		for i, plot := range plots {
			for _, line := range tiptap.ExtractDialogues(docs[i], characterName) {
				signal.Dialogues = append(signal.Dialogues, DialogueLine{
					EpisodeTitle: ep.Title,
					PlotTitle:    plot.Title,
					PlotId:       plot.Id,
					Text:         line,
				})
			}
		}
	}

	return signal, nil
}

// CollectPlotSummaries returns the cached plot summaries of a work in
// hierarchy order, skipping plots that have not been summarized yet. It
// never re-derives from raw documents.
func (a *Aggregator) CollectPlotSummaries(ctx context.Context, userId, workId uuid.UUID) ([]TitledSummary, error) {
	episodes, err := a.orderedEpisodes(ctx, userId, workId)
	if err != nil {
		return nil, err
	}

	var out []TitledSummary
	for _, ep := range episodes {
		plots, err := a.orderedPlots(ctx, userId, ep.Id)
		if err != nil {
			return nil, err
		}
		for _, plot := range plots {
			if strings.TrimSpace(plot.PlotSummary) == "" {
				continue
			}
			out = append(out, TitledSummary{Title: plot.Title, Summary: plot.PlotSummary})
		}
	}
	return out, nil
}

// CollectChapterSummaries is the novel-type analogue of
// CollectPlotSummaries, reading episode-level chapter summaries.
func (a *Aggregator) CollectChapterSummaries(ctx context.Context, userId, workId uuid.UUID) ([]TitledSummary, error) {
	episodes, err := a.orderedEpisodes(ctx, userId, workId)
	if err != nil {
		return nil, err
	}

	var out []TitledSummary
	for _, ep := range episodes {
		if strings.TrimSpace(ep.ChapterSummary) == "" {
			continue
		}
		out = append(out, TitledSummary{Title: ep.Title, Summary: ep.ChapterSummary})
	}
	return out, nil
}

// CollectEpisodeText concatenates the plain text of every document under an
// episode, in plot order.
func (a *Aggregator) CollectEpisodeText(ctx context.Context, userId, episodeId uuid.UUID) (string, error) {
	plots, err := a.orderedPlots(ctx, userId, episodeId)
	if err != nil {
		return "", err
	}

	docs := a.fetchDocuments(ctx, plots)

	var parts []string
	for _, doc := range docs {
		if text := strings.TrimSpace(tiptap.ExtractPlainText(doc)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// CollectPlotText extracts the plain text of one plot's document. A missing
// document reads as empty text, not an error.
func (a *Aggregator) CollectPlotText(ctx context.Context, plot *entity.Plot) string {
	if plot.ContentKey == "" {
		return ""
	}
	doc, err := a.store.Document(ctx, plot.ContentKey)
	if err != nil {
		a.log.Warn("Aggregator", "document fetch failed", map[string]interface{}{
			"plot_id": plot.Id,
			"key":     plot.ContentKey,
			"error":   err.Error(),
		})
		return ""
	}
	return strings.TrimSpace(tiptap.ExtractPlainText(doc))
}

// CollectRelationFacts renders every relation touching the character as a
// directed fact, resolving ids to names from the work's character list and
// falling back to the raw id when a referenced character is gone.
func (a *Aggregator) CollectRelationFacts(ctx context.Context, userId, workId, characterId uuid.UUID) ([]RelationFact, error) {
	relations, err := a.store.Relations(ctx, userId, workId)
	if err != nil {
		return nil, err
	}
	characters, err := a.store.Characters(ctx, userId, workId)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(characters))
	for _, c := range characters {
		names[c.Id] = c.Name
	}
	resolve := func(id uuid.UUID) string {
		if name, ok := names[id]; ok && name != "" {
			return name
		}
		return id.String()
	}

	var facts []RelationFact
	for _, rel := range relations {
		if rel.FromCharacterId != characterId && rel.ToCharacterId != characterId {
			continue
		}
		facts = append(facts, RelationFact{
			FromName:     resolve(rel.FromCharacterId),
			RelationName: rel.RelationName,
			ToName:       resolve(rel.ToCharacterId),
		})
	}
	return facts, nil
}

// orderedEpisodes lists a work's episodes sorted by order_index. Ties break
// by creation time then id so one request always sees the same order, no
// matter how the store returned the rows.
func (a *Aggregator) orderedEpisodes(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Episode, error) {
	episodes, err := a.store.Episodes(ctx, userId, workId)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(episodes, func(i, j int) bool {
		if episodes[i].OrderIndex != episodes[j].OrderIndex {
			return episodes[i].OrderIndex < episodes[j].OrderIndex
		}
		if !episodes[i].CreatedAt.Equal(episodes[j].CreatedAt) {
			return episodes[i].CreatedAt.Before(episodes[j].CreatedAt)
		}
		return episodes[i].Id.String() < episodes[j].Id.String()
	})
	return episodes, nil
}

func (a *Aggregator) orderedPlots(ctx context.Context, userId, episodeId uuid.UUID) ([]*entity.Plot, error) {
	plots, err := a.store.Plots(ctx, userId, episodeId)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(plots, func(i, j int) bool {
		if plots[i].OrderIndex != plots[j].OrderIndex {
			return plots[i].OrderIndex < plots[j].OrderIndex
		}
		if !plots[i].CreatedAt.Equal(plots[j].CreatedAt) {
			return plots[i].CreatedAt.Before(plots[j].CreatedAt)
		}
		return plots[i].Id.String() < plots[j].Id.String()
	})
	return plots, nil
}

// fetchDocuments loads every plot's document concurrently. The result slice
// is index-aligned with plots so completion order cannot affect output
// order. Failed or missing documents come back as nil node slices.
func (a *Aggregator) fetchDocuments(ctx context.Context, plots []*entity.Plot) [][]tiptap.Node {
	docs := make([][]tiptap.Node, len(plots))

	var wg sync.WaitGroup
	for i, plot := range plots {
		if plot.ContentKey == "" {
			continue
		}
		wg.Add(1)
		go func(i int, plot *entity.Plot) {
			defer wg.Done()
			doc, err := a.store.Document(ctx, plot.ContentKey)
			if err != nil {
				a.log.Warn("Aggregator", "document fetch failed, skipping plot", map[string]interface{}{
					"plot_id": plot.Id,
					"key":     plot.ContentKey,
					"error":   err.Error(),
				})
				return
			}
			docs[i] = doc
		}(i, plot)
	}
	wg.Wait()

	return docs
}
