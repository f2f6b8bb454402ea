package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"underwrite/domain/catalog"
	"underwrite/models"
)

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

// buildSessionReport produces the markdown underwriting report for one
// session. The same document backs the detail page and the .md download.
func buildSessionReport(session *models.Session) string {
	state := session.State.State
	var b strings.Builder

	fmt.Fprintf(&b, "# Underwriting Report\n\n")
	fmt.Fprintf(&b, "**Session:** %s  \n", session.ID)
	fmt.Fprintf(&b, "**Status:** %s  \n", sessionStatus(session))
	fmt.Fprintf(&b, "**Started:** %s  \n", state.StartedAt)
	if state.CompletedAt != nil {
		fmt.Fprintf(&b, "**Completed:** %s  \n", *state.CompletedAt)
	}
	b.WriteString("\n")

	b.WriteString("## Applicant\n\n")
	if state.Age != nil {
		fmt.Fprintf(&b, "- Age: %d\n", *state.Age)
	}
	if state.HeightCM != nil {
		fmt.Fprintf(&b, "- Height: %.0f cm\n", *state.HeightCM)
	}
	if state.WeightKG != nil {
		fmt.Fprintf(&b, "- Weight: %.0f kg\n", *state.WeightKG)
	}
	if state.BMI != nil {
		fmt.Fprintf(&b, "- BMI: %.1f\n", *state.BMI)
	}
	if state.RateType != "" {
		fmt.Fprintf(&b, "- Rate type: %s\n", state.RateType)
	}
	b.WriteString("\n")

	b.WriteString("## Decision\n\n")
	if state.Declined {
		fmt.Fprintf(&b, "**Declined:** %s\n\n", state.DeclineReason)
	} else {
		fmt.Fprintf(&b, "- Plan floor: %s\n", state.PlanFloor)
		if state.CurrentPlan != nil {
			fmt.Fprintf(&b, "- Current plan: %s\n", *state.CurrentPlan)
		}
		if state.RecommendedPlan != nil {
			fmt.Fprintf(&b, "- Recommended plan: %s\n", *state.RecommendedPlan)
		}
		if len(state.EligiblePlans) > 0 {
			plans := make([]string, len(state.EligiblePlans))
			for i, p := range state.EligiblePlans {
				plans[i] = string(p)
			}
			fmt.Fprintf(&b, "- Eligible plans: %s\n", strings.Join(plans, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Questions\n\n")
	fmt.Fprintf(&b, "%d asked, %d answered.\n\n", len(state.QuestionsAsked), len(state.QuestionsAnswered))
	for _, qid := range state.QuestionsAnswered {
		text := string(qid)
		if q, ok := catalog.Get(qid); ok && q.Text != "" {
			text = q.Text
		}
		fmt.Fprintf(&b, "- **%s** %s\n", qid, text)
	}
	if state.CurrentQuestion != nil {
		fmt.Fprintf(&b, "\nNext question: **%s**\n", *state.CurrentQuestion)
	}
	if len(state.FollowUpQueue) > 0 {
		queued := make([]string, len(state.FollowUpQueue))
		for i, qid := range state.FollowUpQueue {
			queued[i] = string(qid)
		}
		fmt.Fprintf(&b, "\nQueued follow-ups: %s\n", strings.Join(queued, ", "))
	}

	if len(state.MentionedConditions) > 0 {
		b.WriteString("\n## Mentioned Conditions\n\n")
		for _, cond := range state.MentionedConditions {
			fmt.Fprintf(&b, "- %s\n", cond)
		}
	}

	return b.String()
}

// renderMarkdown converts a markdown document to HTML for the console
func renderMarkdown(doc string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(doc), p, renderer))
}
