package practice

import (
	"strconv"

	"github.com/louisbranch/sip/internal/services/web/templates"
)

func translate(loc templates.Localizer, list []problem) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, templates.T(loc, item.key, item.args...))
	}
	return out
}

func setForm(loc templates.Localizer, in setInput, p problems) *templates.Form {
	return &templates.Form{
		Errors: translate(loc, p.form),
		Fields: []templates.FormField{
			{
				Name:        fieldName,
				Label:       templates.T(loc, "field.set_name"),
				Kind:        templates.KindText,
				Value:       in.Name,
				Placeholder: templates.T(loc, "field.set_name_placeholder"),
				Required:    true,
				Autofocus:   true,
				Errors:      translate(loc, p.fields[fieldName]),
			},
		},
	}
}

// questionFormFrom fills the question form from a stored question.
func questionFormFrom(q Question) questionForm {
	return questionForm{
		Text:       q.Text,
		Difficulty: string(q.Difficulty),
		Tags:       joinTags(q.Tags),
		Order:      strconv.Itoa(q.Order),
	}
}

func questionFormFields(loc templates.Localizer, in questionForm, p problems) *templates.Form {
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = string(DifficultyMedium)
	}
	options := make([]templates.Option, 0, len(Difficulties))
	for _, d := range Difficulties {
		options = append(options, templates.Option{Value: string(d), Label: templates.T(loc, "difficulty."+string(d))})
	}
	order := in.Order
	if order == "" {
		order = "0"
	}
	return &templates.Form{
		Errors: translate(loc, p.form),
		Fields: []templates.FormField{
			{
				Name:        fieldText,
				Label:       templates.T(loc, "field.question_text"),
				Kind:        templates.KindTextarea,
				Value:       in.Text,
				Placeholder: templates.T(loc, "field.question_text_placeholder"),
				Required:    true,
				Autofocus:   true,
				Errors:      translate(loc, p.fields[fieldText]),
			},
			{
				Name:    fieldDifficulty,
				Label:   templates.T(loc, "field.difficulty"),
				Kind:    templates.KindSelect,
				Value:   difficulty,
				Options: options,
				Errors:  translate(loc, p.fields[fieldDifficulty]),
			},
			{
				Name:        fieldTags,
				Label:       templates.T(loc, "field.tags"),
				Kind:        templates.KindText,
				Value:       in.Tags,
				Placeholder: templates.T(loc, "field.tags_placeholder"),
				HelpText:    templates.T(loc, "field.tags_help"),
				Errors:      translate(loc, p.fields[fieldTags]),
			},
			{
				Name:   fieldOrder,
				Label:  templates.T(loc, "field.order"),
				Kind:   templates.KindNumber,
				Value:  order,
				Errors: translate(loc, p.fields[fieldOrder]),
			},
		},
	}
}

func answerFormFields(loc templates.Localizer, in answerForm, p problems) *templates.Form {
	ratings := []templates.Option{{Value: "", Label: templates.T(loc, "field.self_rating_none")}}
	for r := minRating; r <= maxRating; r++ {
		value := strconv.Itoa(r)
		ratings = append(ratings, templates.Option{Value: value, Label: value})
	}
	return &templates.Form{
		Errors: translate(loc, p.form),
		Fields: []templates.FormField{
			{
				Name:        fieldResponse,
				Label:       templates.T(loc, "field.response"),
				Kind:        templates.KindTextarea,
				Value:       in.Text,
				Placeholder: templates.T(loc, "field.response_placeholder"),
				Autofocus:   true,
				Errors:      translate(loc, p.fields[fieldResponse]),
			},
			{
				Name:     fieldRating,
				Label:    templates.T(loc, "field.self_rating"),
				Kind:     templates.KindSelect,
				Value:    in.Rating,
				Options:  ratings,
				HelpText: templates.T(loc, "field.self_rating_help", minRating, maxRating),
				Errors:   translate(loc, p.fields[fieldRating]),
			},
		},
	}
}

// hiddenQuestionField pins an answer to the question it was written for.
func hiddenQuestionField(q Question) templates.FormField {
	return templates.FormField{
		Name:  fieldQuestion,
		Kind:  templates.KindHidden,
		Value: strconv.FormatInt(q.ID, 10),
	}
}
