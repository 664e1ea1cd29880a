// Package report renders budget figures as terminal text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/budgetwise/budgetwise/internal/analyzer"
	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/model"
	"github.com/budgetwise/budgetwise/internal/planner"
	"github.com/budgetwise/budgetwise/internal/rules"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	dimStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	goodStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	badStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// Input is everything a full summary shows.
type Input struct {
	Ledger          *ledger.Ledger
	Analysis        analyzer.Result
	Recommendations []analyzer.Recommendation
	Allocation      planner.Allocation
}

// Build runs the analyzer and planner for l.
func Build(l *ledger.Ledger, rs rules.RuleSet, opts ...analyzer.Option) Input {
	return Input{
		Ledger:          l,
		Analysis:        analyzer.Analyze(l),
		Recommendations: analyzer.Recommendations(l, rs, opts...),
		Allocation:      planner.SuggestedAllocation(l.Income()),
	}
}

// GoalStatus compares a goal with what was actually spent.
type GoalStatus struct {
	Goal   model.BudgetGoal
	Actual decimal.Decimal
	Within bool // actual <= target
}

// GoalStatuses returns one status per goal, sorted by ascending priority.
func GoalStatuses(l *ledger.Ledger) []GoalStatus {
	totals := l.CategoryTotals()
	goals := l.GoalsByPriority()
	out := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		actual := totals[g.Category]
		out = append(out, GoalStatus{
			Goal:   g,
			Actual: actual,
			Within: actual.LessThanOrEqual(g.TargetAmount),
		})
	}
	return out
}

// Renderer formats money with a currency symbol and digit grouping.
type Renderer struct {
	Symbol  string
	printer *message.Printer
}

// NewRenderer creates a Renderer. An empty symbol defaults to "$".
func NewRenderer(symbol string) *Renderer {
	if symbol == "" {
		symbol = "$"
	}
	return &Renderer{Symbol: symbol, printer: message.NewPrinter(language.English)}
}

// Money formats d with two decimals and thousands separators, e.g. "$1,234.50"
// or "-$50.00".
func (r *Renderer) Money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + r.Symbol + r.printer.Sprintf("%.2f", d.InexactFloat64())
}

// Build runs the analyzer and planner for l, writing recommendation amounts
// the same way r writes every other amount.
func (r *Renderer) Build(l *ledger.Ledger, rs rules.RuleSet) Input {
	return Build(l, rs, analyzer.WithMoneyFormat(r.Money))
}

// Render writes the full summary.
func (r *Renderer) Render(w io.Writer, in Input) error {
	sections := []string{
		RenderTitle("PERSONAL BUDGET SUMMARY"),
		r.Overview(in.Analysis),
		r.Breakdown(in.Analysis),
		r.Goals(GoalStatuses(in.Ledger)),
		r.Recommendations(in.Recommendations),
		r.Allocation(in.Allocation),
	}
	_, err := io.WriteString(w, strings.Join(sections, "\n")+"\n")
	return err
}

// Overview renders income, spending, remainder, and health.
func (r *Renderer) Overview(res analyzer.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monthly Income:   %s\n", r.Money(res.TotalIncome))
	fmt.Fprintf(&b, "Total Expenses:   %s\n", r.Money(res.TotalExpenses))
	fmt.Fprintf(&b, "Remaining Budget: %s\n", r.Money(res.RemainingBudget))
	fmt.Fprintf(&b, "Budget Health:    %s\n", healthLabel(res.Health))
	return b.String()
}

func healthLabel(h analyzer.Health) string {
	label := strings.ToUpper(string(h))
	switch h {
	case analyzer.HealthGood:
		return goodStyle.Render(label)
	case analyzer.HealthConcerning:
		return warnStyle.Render(label)
	default:
		return badStyle.Render(label)
	}
}

// Breakdown renders per-category spending in first-seen order.
func (r *Renderer) Breakdown(res analyzer.Result) string {
	t := Table{Title: "EXPENSE BREAKDOWN", Headers: []string{"Category", "Amount", "Share"}}
	for _, c := range res.Order {
		line := res.Breakdown[c]
		t.Rows = append(t.Rows, []string{c.Label(), r.Money(line.Amount), line.Percentage.StringFixed(1) + "%"})
	}
	if len(t.Rows) == 0 {
		return headerStyle.Render(t.Title) + "\nNo expenses recorded.\n"
	}
	return RenderTable(t)
}

// Goals renders goal progress.
func (r *Renderer) Goals(statuses []GoalStatus) string {
	if len(statuses) == 0 {
		return headerStyle.Render("BUDGET GOALS") + "\nNo budget goals set.\n"
	}
	t := Table{Title: "BUDGET GOALS", Headers: []string{"Category", "Priority", "Target", "Actual", "Status"}}
	for _, s := range statuses {
		status := goodStyle.Render("✓ within")
		if !s.Within {
			status = badStyle.Render("✗ over")
		}
		t.Rows = append(t.Rows, []string{
			s.Goal.Category.Label(),
			strconv.Itoa(s.Goal.Priority),
			r.Money(s.Goal.TargetAmount),
			r.Money(s.Actual),
			status,
		})
	}
	return RenderTable(t)
}

// Recommendations renders a numbered list.
func (r *Renderer) Recommendations(recs []analyzer.Recommendation) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("RECOMMENDATIONS"))
	b.WriteString("\n")
	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec.Text)
	}
	return b.String()
}

// Allocation renders the suggested budget split.
func (r *Renderer) Allocation(a planner.Allocation) string {
	t := Table{Title: "SUGGESTED BUDGET ALLOCATION", Headers: []string{"Category", "Share", "Amount"}}
	for _, s := range a {
		t.Rows = append(t.Rows, []string{s.Label, s.Fraction.Shift(2).StringFixed(0) + "%", r.Money(s.Amount)})
	}
	return RenderTable(t)
}
