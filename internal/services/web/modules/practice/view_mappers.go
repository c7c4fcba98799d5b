package practice

import (
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

func mapQuestionSetList(summaries []setSummary, username string) templates.QuestionSetListPage {
	rows := make([]templates.QuestionSetRow, 0, len(summaries))
	for _, summary := range summaries {
		row := templates.QuestionSetRow{
			Name:      summary.set.Name,
			Href:      routepath.QuestionSet(summary.set.ID),
			Questions: summary.questions,
		}
		if canEdit(summary.set, username) {
			row.EditHref = routepath.QuestionSetEdit(summary.set.ID)
			row.DeleteHref = routepath.QuestionSetDelete(summary.set.ID)
		}
		rows = append(rows, row)
	}
	return templates.QuestionSetListPage{Sets: rows, NewHref: routepath.QuestionSetsNew}
}

func mapQuestionSetPage(set QuestionSet, questions []Question, username string) templates.QuestionSetPage {
	editable := canEdit(set, username)
	rows := make([]templates.QuestionRow, 0, len(questions))
	for i, q := range questions {
		row := templates.QuestionRow{
			Number:     i + 1,
			Text:       q.Text,
			Difficulty: string(q.Difficulty),
			Tags:       q.Tags,
		}
		if editable {
			row.EditHref = routepath.QuestionEdit(set.ID, q.ID)
			row.DeleteHref = routepath.QuestionDelete(set.ID, q.ID)
		}
		rows = append(rows, row)
	}
	page := templates.QuestionSetPage{
		SetName:     set.Name,
		Questions:   rows,
		BackHref:    routepath.QuestionSets,
		StartAction: routepath.PracticeStartSet(set.ID),
	}
	if editable {
		page.AddHref = routepath.QuestionNew(set.ID)
		page.EditHref = routepath.QuestionSetEdit(set.ID)
		page.DeleteHref = routepath.QuestionSetDelete(set.ID)
	}
	return page
}

func mapPracticeIndex(summaries []setSummary) templates.PracticeIndexPage {
	rows := make([]templates.PracticeSetRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, templates.PracticeSetRow{
			Name:        summary.set.Name,
			Href:        routepath.QuestionSet(summary.set.ID),
			Questions:   summary.questions,
			StartAction: routepath.PracticeStartSet(summary.set.ID),
		})
	}
	return templates.PracticeIndexPage{Sets: rows}
}

func mapQuestionPage(state progress) templates.PracticeQuestionPage {
	q := state.current()
	return templates.PracticeQuestionPage{
		SetName:    state.set.Name,
		Number:     state.next + 1,
		Total:      len(state.questions),
		Question:   q.Text,
		Difficulty: string(q.Difficulty),
		Tags:       q.Tags,
		Action:     routepath.PracticeSession(state.session.ID),
	}
}

func mapReview(state progress) templates.PracticeReviewPage {
	items := make([]templates.ReviewItem, 0, len(state.questions))
	for i, q := range state.questions {
		item := templates.ReviewItem{Number: i + 1, Question: q.Text}
		if resp, ok := state.answers[q.ID]; ok {
			item.Answer = resp.Text
			item.Rating = resp.Rating
		}
		items = append(items, item)
	}
	page := templates.PracticeReviewPage{
		SetName:   state.set.Name,
		StartedAt: state.session.StartedAt,
		Items:     items,
		Complete:  state.complete,
		BackHref:  routepath.History,
	}
	if !state.complete {
		page.ResumeHref = routepath.PracticeSession(state.session.ID)
	}
	return page
}

func mapHistory(entries []historyEntry) templates.HistoryPage {
	rows := make([]templates.HistoryRow, 0, len(entries))
	for _, entry := range entries {
		complete := entry.total > 0 && entry.answered >= entry.total
		row := templates.HistoryRow{
			SetName:    entry.set.Name,
			StartedAt:  entry.session.StartedAt,
			Answered:   entry.answered,
			Total:      entry.total,
			Complete:   complete,
			ReviewHref: routepath.PracticeReview(entry.session.ID),
		}
		if !complete {
			row.ResumeHref = routepath.PracticeSession(entry.session.ID)
		}
		rows = append(rows, row)
	}
	return templates.HistoryPage{Entries: rows}
}
