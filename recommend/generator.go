package recommend

import (
	"context"
	"fmt"
	"strings"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
	"github.com/staywise/hotel-dialogue/pkg/openrouter"
)

const systemPrompt = `You are a hotel recommendation assistant. You receive a structured
summary of what a traveller has told us so far. Suggest three hotels that
match the stated criteria. Keep each suggestion to two sentences. If the
summary says pricing details are available, include an estimated nightly
rate for each hotel. Never invent criteria the traveller did not state.`

// ModelGenerator produces recommendation text from a chat model.
type ModelGenerator struct {
	runner compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.Generator = (*ModelGenerator)(nil)

func NewModelGenerator(ctx context.Context, builder openrouter.LLMBuilder) (*ModelGenerator, error) {
	chatModel, err := builder.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommend: build chat model: %w", err)
	}

	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("recommend: add prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("recommend: add model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("recommend: add edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("recommend: add edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("recommend: add edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("recommend.model_graph"))
	if err != nil {
		return nil, fmt.Errorf("recommend: compile graph: %w", err)
	}

	return &ModelGenerator{runner: runner}, nil
}

func (g *ModelGenerator) Generate(ctx context.Context, req contractx.RecommendationRequest) (string, error) {
	out, err := g.runner.Invoke(ctx, map[string]any{
		"input": buildPrompt(req),
	})
	if err != nil {
		return "", fmt.Errorf("recommend: model invoke: %w", err)
	}

	text := strings.TrimSpace(out.Content)
	if text == "" {
		return "", fmt.Errorf("recommend: model returned empty content")
	}
	return text, nil
}

func buildPrompt(req contractx.RecommendationRequest) string {
	var b strings.Builder

	switch req.Kind {
	case slotsx.KindPriced:
		b.WriteString("Stay dates and party size are known, so pricing details are available.\n")
	case slotsx.KindConditionalPass:
		b.WriteString("Budget and preferred area are known, but dates are not. Suggest hotels without quoting exact rates.\n")
	default:
		b.WriteString("Only early preferences are known. Offer a broad first pass of suggestions.\n")
	}

	b.WriteString("Traveller criteria:\n")
	writeLine(&b, "destination", req.Slots.City)
	if req.Slots.CityTierFallback {
		b.WriteString("- note: destination coverage is approximate, hedge accordingly\n")
	}
	writeLine(&b, "budget per night", req.Slots.BudgetPerNight)
	writeLine(&b, "preferred area", req.Slots.Location)
	writeLine(&b, "preferences", strings.Join(req.Slots.Tags, ", "))
	if req.Slots.CheckIn != "" && req.Slots.CheckOut != "" {
		writeLine(&b, "stay", req.Slots.CheckIn+" to "+req.Slots.CheckOut)
	}
	if req.Slots.Adults != nil {
		writeLine(&b, "adults", fmt.Sprint(*req.Slots.Adults))
	}
	if len(req.Slots.Children) > 0 {
		ages := make([]string, len(req.Slots.Children))
		for i, a := range req.Slots.Children {
			ages[i] = fmt.Sprint(a)
		}
		writeLine(&b, "children ages", strings.Join(ages, ", "))
	}
	if req.Slots.Rooms > 1 {
		writeLine(&b, "rooms", fmt.Sprint(req.Slots.Rooms))
	}
	writeLine(&b, "facilities", strings.Join(req.Slots.Facilities, ", "))
	writeLine(&b, "view", req.Slots.View)
	writeLine(&b, "brand", req.Slots.Brand)
	if req.Slots.OpenAfterYear > 0 {
		writeLine(&b, "opened after", fmt.Sprint(req.Slots.OpenAfterYear))
	}

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString("- ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
