package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"quizpage/internal/bank"
	"quizpage/internal/question"
	"quizpage/internal/session"
)

func defaultBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.Default()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	return b
}

func renderHTML(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func selectAll(t *testing.T, b *bank.Bank, state session.State, picks map[string]string) session.State {
	t.Helper()
	for id, key := range picks {
		next, err := session.Select(b, state, id, key)
		if err != nil {
			t.Fatalf("select %s: %v", id, err)
		}
		state = next
	}
	return state
}

// TestBuildUnanswered verifies the initial tree hides every explanation.
func TestBuildUnanswered(t *testing.T) {
	b := defaultBank(t)
	tree := Build(b, session.New("s1"))
	if len(tree.Questions) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(tree.Questions))
	}
	for i, block := range tree.Questions {
		if block.Number != i+1 || block.Badge != "Pregunta "+string(rune('1'+i)) {
			t.Fatalf("unexpected badge %q for block %d", block.Badge, i)
		}
		if !block.Explanation.Hidden || block.Explanation.Text != "" {
			t.Fatalf("%s: expected hidden empty slot", block.ID)
		}
		if block.Explanation.ID != block.ID+"-explain" {
			t.Fatalf("%s: unexpected slot id %q", block.ID, block.Explanation.ID)
		}
		for _, control := range block.Options {
			if control.Group != block.ID {
				t.Fatalf("%s: control grouped under %q", block.ID, control.Group)
			}
			if control.Checked {
				t.Fatalf("%s: expected no checked control", block.ID)
			}
		}
	}
	if tree.Summary.Visible {
		t.Fatalf("expected hidden summary")
	}
}

// TestBuildGraded verifies feedback reveals every slot and fills the summary.
func TestBuildGraded(t *testing.T) {
	b := defaultBank(t)
	state := selectAll(t, b, session.New("s1"), map[string]string{"q1": "c", "q2": "a", "q3": "b", "q4": "c"})
	state, _ = session.Grade(b, state)
	tree := Build(b, state)
	for _, block := range tree.Questions {
		slot := block.Explanation
		if slot.Hidden || slot.Text == "" {
			t.Fatalf("%s: expected revealed slot", block.ID)
		}
		wantCorrect := block.ID != "q2"
		if slot.Correct != wantCorrect {
			t.Fatalf("%s: expected correct=%v", block.ID, wantCorrect)
		}
		if wantCorrect && slot.Marker != CorrectMarker || !wantCorrect && slot.Marker != IncorrectMarker {
			t.Fatalf("%s: unexpected marker %q", block.ID, slot.Marker)
		}
	}
	summary := tree.Summary
	if !summary.Visible || summary.ScorePercent != 75 || summary.Fraction() != "3/4" || summary.Message != PassMessage {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	checked := 0
	for _, control := range tree.Questions[1].Options {
		if control.Checked {
			checked++
			if control.Value != "a" {
				t.Fatalf("expected a checked, got %s", control.Value)
			}
		}
	}
	if checked != 1 {
		t.Fatalf("expected exactly one checked control, got %d", checked)
	}
}

// TestBuildAfterResetKeepsSelections verifies reset clears feedback but not controls.
func TestBuildAfterResetKeepsSelections(t *testing.T) {
	b := defaultBank(t)
	state := selectAll(t, b, session.New("s1"), map[string]string{"q3": "d"})
	state, _ = session.Grade(b, state)
	state = session.Reset(state)
	tree := Build(b, state)
	for _, block := range tree.Questions {
		if !block.Explanation.Hidden || block.Explanation.Marker != "" {
			t.Fatalf("%s: expected cleared slot", block.ID)
		}
	}
	if tree.Summary.Visible {
		t.Fatalf("expected cleared summary")
	}
	if !tree.Questions[2].Options[3].Checked {
		t.Fatalf("expected q3 selection to remain checked")
	}

	html := renderHTML(t, Page(tree))
	if strings.Contains(html, CorrectMarker) || strings.Contains(html, IncorrectMarker) {
		t.Fatalf("expected no markers after reset")
	}
	if !strings.Contains(html, `<div class="explain" id="q3-explain" hidden></div>`) {
		t.Fatalf("expected empty hidden slot in %s", html)
	}
	if !strings.Contains(html, `<div id="result" class="result" role="status"></div>`) {
		t.Fatalf("expected empty summary")
	}
}

// TestHTMLEscapesBankText verifies markup characters never reach the output raw.
func TestHTMLEscapesBankText(t *testing.T) {
	hostile := `<script>alert("x")</script> & 'quoted'`
	b, err := bank.New(`Title <b>`, []question.Question{{
		ID:      "q1",
		Prompt:  hostile,
		Context: hostile,
		Options: []question.Option{{Key: "a", Label: hostile}, {Key: "b", Label: "plain"}},
		Correct: "a",
		Explain: hostile,
	}})
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	state, err := session.Select(b, session.New("s1"), "q1", "a")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	state, _ = session.Grade(b, state)
	html := renderHTML(t, Page(Build(b, state)))
	if strings.Contains(html, "<script>") || strings.Contains(html, "<b>") {
		t.Fatalf("raw markup leaked into output: %s", html)
	}
	encoded := `&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; &#39;quoted&#39;`
	if got := strings.Count(html, encoded); got != 4 {
		t.Fatalf("expected encoded text for prompt, context, label and explanation, found %d", got)
	}
	if !strings.Contains(html, "<title>Title &lt;b&gt;</title>") {
		t.Fatalf("expected escaped title")
	}
}

// TestHTMLStructure verifies the markup of a graded question.
func TestHTMLStructure(t *testing.T) {
	b := defaultBank(t)
	state := selectAll(t, b, session.New("s1"), map[string]string{"q1": "c"})
	state, _ = session.Grade(b, state)
	html := renderHTML(t, List(Build(b, state)))
	for _, snippet := range []string{
		`<ol id="questions" class="questions" data-phase="graded">`,
		`<li class="q" id="q1">`,
		`<div class="badge">Pregunta 1</div>`,
		`<p class="prompt" id="q1-prompt">`,
		`<input type="radio" name="q1" value="c" aria-labelledby="q1-prompt" checked>`,
		`<input type="radio" name="q1" value="a" aria-labelledby="q1-prompt">`,
		`<div class="explain correct" id="q1-explain"><strong>✅ Correcto</strong><br>`,
		`<div class="explain incorrect" id="q2-explain"><strong>❌ Incorrecto</strong><br>`,
		`<pre><code>Comandos:`,
	} {
		if !strings.Contains(html, snippet) {
			t.Fatalf("expected %q in output:\n%s", snippet, html)
		}
	}

	summary := renderHTML(t, SummaryView(Build(b, state).Summary))
	if !strings.Contains(summary, `class="result bad"`) || !strings.Contains(summary, "<strong>25%</strong> (1/4) · Sigue practicando") {
		t.Fatalf("unexpected summary markup: %s", summary)
	}
}

// TestHTMLHonoursCancelledContext verifies rendering stops on a done context.
func TestHTMLHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := Page(Build(defaultBank(t), session.New("s1"))).Render(ctx, &buf); err == nil {
		t.Fatalf("expected context error")
	}
}
