package summary

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"plot-editor-be/internal/constant"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/pkg/tiptap"
)

type nopLogger struct{}

var _ logger.ILogger = nopLogger{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeStore serves fixtures from memory. List methods return slices in
// insertion order, so tests control what order the aggregator sees.
type fakeStore struct {
	episodes   map[uuid.UUID][]*entity.Episode
	plots      map[uuid.UUID][]*entity.Plot
	characters []*entity.Character
	relations  []*entity.Relation
	docs       map[string][]tiptap.Node
	brokenKeys map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		episodes:   map[uuid.UUID][]*entity.Episode{},
		plots:      map[uuid.UUID][]*entity.Plot{},
		docs:       map[string][]tiptap.Node{},
		brokenKeys: map[string]bool{},
	}
}

func (f *fakeStore) Work(ctx context.Context, userId, workId uuid.UUID) (*entity.Work, error) {
	return nil, nil
}

func (f *fakeStore) Episode(ctx context.Context, userId, episodeId uuid.UUID) (*entity.Episode, error) {
	return nil, nil
}

func (f *fakeStore) Plot(ctx context.Context, userId, plotId uuid.UUID) (*entity.Plot, error) {
	return nil, nil
}

func (f *fakeStore) Character(ctx context.Context, userId, characterId uuid.UUID) (*entity.Character, error) {
	return nil, nil
}

func (f *fakeStore) Episodes(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Episode, error) {
	return f.episodes[workId], nil
}

func (f *fakeStore) Plots(ctx context.Context, userId, episodeId uuid.UUID) ([]*entity.Plot, error) {
	return f.plots[episodeId], nil
}

func (f *fakeStore) Characters(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Character, error) {
	return f.characters, nil
}

func (f *fakeStore) Relations(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Relation, error) {
	return f.relations, nil
}

func (f *fakeStore) Document(ctx context.Context, key string) ([]tiptap.Node, error) {
	if f.brokenKeys[key] {
		return nil, errors.New("blob unavailable")
	}
	return f.docs[key], nil
}

func dialogueDoc(character string, lines ...string) []tiptap.Node {
	nodes := make([]tiptap.Node, len(lines))
	for i, line := range lines {
		nodes[i] = tiptap.Node{
			Type:    tiptap.NodeTypeDialogue,
			Attrs:   map[string]interface{}{tiptap.AttrCharacterName: character},
			Content: []tiptap.Node{{Type: tiptap.NodeTypeText, Text: line}},
		}
	}
	return nodes
}

func (f *fakeStore) addEpisode(workId uuid.UUID, title string, orderIndex int, created time.Time) *entity.Episode {
	ep := &entity.Episode{
		Id:         uuid.New(),
		WorkId:     workId,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  created,
	}
	f.episodes[workId] = append(f.episodes[workId], ep)
	return ep
}

func (f *fakeStore) addPlot(episodeId uuid.UUID, title string, orderIndex int, doc []tiptap.Node) *entity.Plot {
	p := &entity.Plot{
		Id:         uuid.New(),
		EpisodeId:  episodeId,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  time.Now(),
	}
	if doc != nil {
		p.ContentKey = "plots/test/" + p.Id.String() + ".json"
		f.docs[p.ContentKey] = doc
	}
	f.plots[episodeId] = append(f.plots[episodeId], p)
	return p
}

func TestCollectCharacterSignalFollowsHierarchyOrder(t *testing.T) {
	store := newFakeStore()
	workId := uuid.New()
	base := time.Now()

	// Inserted out of order on purpose; order_index must win.
	ep2 := store.addEpisode(workId, "Episode Two", 1, base)
	ep1 := store.addEpisode(workId, "Episode One", 0, base)

	store.addPlot(ep1.Id, "Scene B", 1, dialogueDoc("Mira", "second line"))
	store.addPlot(ep1.Id, "Scene A", 0, dialogueDoc("Mira", "first line"))
	store.addPlot(ep2.Id, "Scene C", 0, dialogueDoc("Mira", "third line"))

	agg := NewAggregator(store, nopLogger{})
	signal, err := agg.CollectCharacterSignal(context.Background(), uuid.New(), workId, "Mira", constant.WorkTypePlot)
	if err != nil {
		t.Fatalf("CollectCharacterSignal: %v", err)
	}

	var got []string
	for _, d := range signal.Dialogues {
		got = append(got, d.Text)
	}
	want := []string{"first line", "second line", "third line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dialogue order = %v, want %v", got, want)
	}
	if signal.Dialogues[0].EpisodeTitle != "Episode One" || signal.Dialogues[0].PlotTitle != "Scene A" {
		t.Errorf("origin tags = %q/%q, want Episode One/Scene A",
			signal.Dialogues[0].EpisodeTitle, signal.Dialogues[0].PlotTitle)
	}
}

func TestCollectCharacterSignalSkipsBrokenDocuments(t *testing.T) {
	store := newFakeStore()
	workId := uuid.New()
	ep := store.addEpisode(workId, "Episode One", 0, time.Now())

	broken := store.addPlot(ep.Id, "Broken", 0, dialogueDoc("Mira", "lost line"))
	store.brokenKeys[broken.ContentKey] = true
	store.addPlot(ep.Id, "Intact", 1, dialogueDoc("Mira", "kept line"))

	agg := NewAggregator(store, nopLogger{})
	signal, err := agg.CollectCharacterSignal(context.Background(), uuid.New(), workId, "Mira", constant.WorkTypePlot)
	if err != nil {
		t.Fatalf("CollectCharacterSignal: %v", err)
	}

	if len(signal.Dialogues) != 1 || signal.Dialogues[0].Text != "kept line" {
		t.Errorf("dialogues = %+v, want only the intact plot's line", signal.Dialogues)
	}
}

func TestCollectCharacterSignalNovelType(t *testing.T) {
	store := newFakeStore()
	workId := uuid.New()
	ep := store.addEpisode(workId, "Chapter One", 0, time.Now())
	store.addPlot(ep.Id, "Part 1", 0, dialogueDoc("Mira", "spoken by Mira"))
	store.addPlot(ep.Id, "Part 2", 1, dialogueDoc("Bob", "spoken by Bob"))

	agg := NewAggregator(store, nopLogger{})
	signal, err := agg.CollectCharacterSignal(context.Background(), uuid.New(), workId, "Mira", constant.WorkTypeNovel)
	if err != nil {
		t.Fatalf("CollectCharacterSignal: %v", err)
	}

	if len(signal.Dialogues) != 0 {
		t.Errorf("novel works must not use dialogue attribution, got %+v", signal.Dialogues)
	}

	// One labeled block per document, in plot order.
	var got []string
	for _, ch := range signal.ChapterTexts {
		got = append(got, ch.Text)
	}
	want := []string{
		"[Chapter One] spoken by Mira",
		"[Chapter One] spoken by Bob",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("chapter texts = %v, want %v", got, want)
	}
}

func TestCollectPlotSummariesSkipsUnsummarized(t *testing.T) {
	store := newFakeStore()
	workId := uuid.New()
	ep := store.addEpisode(workId, "Episode One", 0, time.Now())

	withSummary := store.addPlot(ep.Id, "Scene A", 0, nil)
	withSummary.PlotSummary = "mira leaves the city"
	store.addPlot(ep.Id, "Scene B", 1, nil)
	blank := store.addPlot(ep.Id, "Scene C", 2, nil)
	blank.PlotSummary = "   "

	agg := NewAggregator(store, nopLogger{})
	got, err := agg.CollectPlotSummaries(context.Background(), uuid.New(), workId)
	if err != nil {
		t.Fatalf("CollectPlotSummaries: %v", err)
	}

	want := []TitledSummary{{Title: "Scene A", Summary: "mira leaves the city"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("summaries = %+v, want %+v", got, want)
	}
}

func TestCollectEpisodeTextJoinsPlots(t *testing.T) {
	store := newFakeStore()
	workId := uuid.New()
	ep := store.addEpisode(workId, "Episode One", 0, time.Now())
	store.addPlot(ep.Id, "Scene A", 0, []tiptap.Node{
		{Type: "paragraph", Content: []tiptap.Node{{Type: tiptap.NodeTypeText, Text: "opening"}}},
	})
	store.addPlot(ep.Id, "Empty", 1, nil)
	store.addPlot(ep.Id, "Scene B", 2, []tiptap.Node{
		{Type: "paragraph", Content: []tiptap.Node{{Type: tiptap.NodeTypeText, Text: "closing"}}},
	})

	agg := NewAggregator(store, nopLogger{})
	got, err := agg.CollectEpisodeText(context.Background(), uuid.New(), ep.Id)
	if err != nil {
		t.Fatalf("CollectEpisodeText: %v", err)
	}
	if got != "opening\n\nclosing" {
		t.Errorf("episode text = %q, want %q", got, "opening\n\nclosing")
	}
}

func TestCollectRelationFactsResolvesNames(t *testing.T) {
	store := newFakeStore()
	workId := uuid.New()
	mira := &entity.Character{Id: uuid.New(), WorkId: workId, Name: "Mira"}
	bob := &entity.Character{Id: uuid.New(), WorkId: workId, Name: "Bob"}
	gone := uuid.New()
	store.characters = []*entity.Character{mira, bob}
	store.relations = []*entity.Relation{
		{Id: uuid.New(), WorkId: workId, FromCharacterId: mira.Id, ToCharacterId: bob.Id, RelationName: "rival"},
		{Id: uuid.New(), WorkId: workId, FromCharacterId: gone, ToCharacterId: mira.Id, RelationName: "mentor"},
		{Id: uuid.New(), WorkId: workId, FromCharacterId: bob.Id, ToCharacterId: gone, RelationName: "unrelated"},
	}

	agg := NewAggregator(store, nopLogger{})
	got, err := agg.CollectRelationFacts(context.Background(), uuid.New(), workId, mira.Id)
	if err != nil {
		t.Fatalf("CollectRelationFacts: %v", err)
	}

	want := []RelationFact{
		{FromName: "Mira", RelationName: "rival", ToName: "Bob"},
		{FromName: gone.String(), RelationName: "mentor", ToName: "Mira"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("facts = %+v, want %+v", got, want)
	}
}
