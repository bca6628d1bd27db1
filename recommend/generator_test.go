package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
)

type fakeChatModel struct {
	response  *schema.Message
	err       error
	lastInput []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported in fake")
}

func (f *fakeChatModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

type fakeBuilder struct {
	model *fakeChatModel
}

func (b *fakeBuilder) New(ctx context.Context) (einomodel.ToolCallingChatModel, error) {
	return b.model, nil
}

func pricedRequest() contractx.RecommendationRequest {
	adults := 2
	return contractx.RecommendationRequest{
		Kind: slotsx.KindPriced,
		Slots: slotsx.Snapshot{
			City:           "Tokyo",
			BudgetPerNight: "100-200",
			Location:       "Shinjuku",
			CheckIn:        "2026-03-10",
			CheckOut:       "2026-03-14",
			Adults:         &adults,
			Children:       []int{6},
			Rooms:          1,
		},
	}
}

func TestModelGeneratorGenerate(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		response: &schema.Message{Role: schema.Assistant, Content: "Three hotels near Shinjuku."},
	}
	gen, err := NewModelGenerator(context.Background(), &fakeBuilder{model: fake})
	if err != nil {
		t.Fatalf("NewModelGenerator() error = %v", err)
	}

	out, err := gen.Generate(context.Background(), pricedRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "Three hotels near Shinjuku." {
		t.Fatalf("Generate() = %q", out)
	}

	if len(fake.lastInput) != 2 {
		t.Fatalf("model received %d messages, want 2", len(fake.lastInput))
	}
	user := fake.lastInput[1].Content
	for _, want := range []string{"destination: Tokyo", "budget per night: 100-200", "children ages: 6", "pricing details are available"} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q:\n%s", want, user)
		}
	}
}

func TestModelGeneratorEmptyContent(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{response: &schema.Message{Role: schema.Assistant, Content: "   "}}
	gen, err := NewModelGenerator(context.Background(), &fakeBuilder{model: fake})
	if err != nil {
		t.Fatalf("NewModelGenerator() error = %v", err)
	}

	if _, err := gen.Generate(context.Background(), pricedRequest()); err == nil {
		t.Fatal("empty model content must be an error")
	}
}

func TestBuildPromptHedgesFallbackCity(t *testing.T) {
	t.Parallel()

	req := contractx.RecommendationRequest{
		Kind: slotsx.KindFirstPass,
		Slots: slotsx.Snapshot{
			City:             "Atlantis",
			CityTierFallback: true,
		},
	}
	prompt := buildPrompt(req)
	if !strings.Contains(prompt, "coverage is approximate") {
		t.Fatalf("prompt must hedge unknown destinations:\n%s", prompt)
	}
	if !strings.Contains(prompt, "broad first pass") {
		t.Fatalf("prompt must describe the first-pass fidelity:\n%s", prompt)
	}
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, req contractx.RecommendationRequest) (string, error) {
	return f.text, f.err
}

func TestAsyncSinkDeliversGeneratedText(t *testing.T) {
	t.Parallel()

	delivered := make(chan string, 1)
	sink := NewAsyncSink(
		&fakeGenerator{text: "shortlist"},
		func(text string, _ contractx.RecommendationRequest) { delivered <- text },
	)

	sink.Publish(pricedRequest())

	select {
	case got := <-delivered:
		if got != "shortlist" {
			t.Fatalf("delivered %q, want %q", got, "shortlist")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("deliver callback was never invoked")
	}
}

func TestAsyncSinkDropsFailedGeneration(t *testing.T) {
	t.Parallel()

	delivered := make(chan string, 1)
	sink := NewAsyncSink(
		&fakeGenerator{err: errors.New("model down")},
		func(text string, _ contractx.RecommendationRequest) { delivered <- text },
		WithGenerateTimeout(time.Second),
	)

	sink.Publish(pricedRequest())

	select {
	case got := <-delivered:
		t.Fatalf("unexpected delivery %q after generator failure", got)
	case <-time.After(200 * time.Millisecond):
	}
}
