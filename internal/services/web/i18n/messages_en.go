package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Navigation
	message.SetString(lang, "nav.practice", "Practice")
	message.SetString(lang, "nav.question_sets", "Question Sets")
	message.SetString(lang, "nav.history", "History")
	message.SetString(lang, "nav.login", "Login")
	message.SetString(lang, "nav.register", "Register")
	message.SetString(lang, "nav.logout", "Logout")
	message.SetString(lang, "nav.toggle", "Toggle navigation")
	message.SetString(lang, "nav.signed_in_as", "Signed in as")
	message.SetString(lang, "alert.close", "Close")

	// Login page
	message.SetString(lang, "login.title", "Login")
	message.SetString(lang, "login.submit", "Login")
	message.SetString(lang, "login.no_account", "Don't have an account?")
	message.SetString(lang, "login.register_link", "Register here")
	message.SetString(lang, "login.invalid", "Please enter a correct username and password. Note that both fields may be case-sensitive.")

	// Registration page
	message.SetString(lang, "register.title", "Register")
	message.SetString(lang, "register.submit", "Register")
	message.SetString(lang, "register.cancel", "Cancel")
	message.SetString(lang, "register.have_account", "Already have an account?")
	message.SetString(lang, "register.login_link", "Login here")
	message.SetString(lang, "register.password_help", "Your password must contain at least %d characters.")
	message.SetString(lang, "register.failed", "We could not create your account. Please check the form and try again.")

	// Fields
	message.SetString(lang, "field.username", "Username")
	message.SetString(lang, "field.email", "Email")
	message.SetString(lang, "field.password", "Password")
	message.SetString(lang, "field.password_confirm", "Password confirmation")
	message.SetString(lang, "field.set_name", "Name")
	message.SetString(lang, "field.set_name_placeholder", "e.g. Behavioral interview")
	message.SetString(lang, "field.question_text", "Question")
	message.SetString(lang, "field.question_text_placeholder", "Tell me about a time you disagreed with a teammate.")
	message.SetString(lang, "field.difficulty", "Difficulty")
	message.SetString(lang, "field.tags", "Tags")
	message.SetString(lang, "field.tags_placeholder", "leadership, conflict")
	message.SetString(lang, "field.tags_help", "Separate tags with commas.")
	message.SetString(lang, "field.order", "Order")
	message.SetString(lang, "field.response", "Your answer")
	message.SetString(lang, "field.response_placeholder", "Write your answer here.")
	message.SetString(lang, "field.self_rating", "Self rating")
	message.SetString(lang, "field.self_rating_none", "No rating")
	message.SetString(lang, "field.self_rating_help", "How well did you answer, from %d to %d?")

	// Validation
	message.SetString(lang, "form.required", "This field is required.")
	message.SetString(lang, "form.invalid_email", "Enter a valid email address.")
	message.SetString(lang, "form.password_mismatch", "The two password fields didn't match.")
	message.SetString(lang, "form.password_too_short", "This password is too short. It must contain at least %d characters.")
	message.SetString(lang, "form.username_invalid", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	message.SetString(lang, "form.username_taken", "A user with that username already exists.")
	message.SetString(lang, "form.expired", "Your form expired. Please try again.")
	message.SetString(lang, "form.password_too_common", "This password is too common.")
	message.SetString(lang, "form.password_too_long", "This password is too long.")
	message.SetString(lang, "form.too_long", "Ensure this value has at most %d characters.")
	message.SetString(lang, "form.invalid", "Please correct the errors below.")
	message.SetString(lang, "form.invalid_choice", "Select a valid choice.")
	message.SetString(lang, "form.invalid_number", "Enter a whole number.")
	message.SetString(lang, "form.min_value", "Ensure this value is greater than or equal to %d.")
	message.SetString(lang, "form.range", "Choose a value between %d and %d.")

	// Flash notices
	message.SetString(lang, "flash.registered", "Welcome, %s! Your account has been created.")
	message.SetString(lang, "flash.logged_in", "Welcome back, %s.")
	message.SetString(lang, "flash.logged_out", "You have been logged out.")
	message.SetString(lang, "flash.auth_unavailable", "Sign-in is temporarily unavailable. Please try again later.")
	message.SetString(lang, "flash.login_required", "Please log in to see this page.")
	message.SetString(lang, "flash.practice_unavailable", "Practice is temporarily unavailable. Please try again later.")

	// Actions
	message.SetString(lang, "action.edit", "Edit")
	message.SetString(lang, "action.delete", "Delete")
	message.SetString(lang, "action.save", "Save")
	message.SetString(lang, "action.cancel", "Cancel")
	message.SetString(lang, "action.confirm_delete", "Yes, delete")

	// Question sets
	message.SetString(lang, "question_sets.title", "Question Sets")
	message.SetString(lang, "question_sets.new", "New set")
	message.SetString(lang, "question_sets.new_title", "New question set")
	message.SetString(lang, "question_sets.create", "Create set")
	message.SetString(lang, "question_sets.edit", "Rename set")
	message.SetString(lang, "question_sets.edit_title", "Rename question set")
	message.SetString(lang, "question_sets.delete", "Delete set")
	message.SetString(lang, "question_sets.delete_title", "Delete question set")
	message.SetString(lang, "question_sets.delete_prompt", "This removes the set with all of its questions and practice sessions.")
	message.SetString(lang, "question_sets.question_count", "%d questions")
	message.SetString(lang, "question_sets.empty", "No question sets yet. Create one to start practicing.")
	message.SetString(lang, "question_sets.back", "Back to question sets")
	message.SetString(lang, "question_sets.created", "Question set created. Add some questions to it.")
	message.SetString(lang, "question_sets.updated", "Question set renamed.")
	message.SetString(lang, "question_sets.deleted", "Question set deleted.")
	message.SetString(lang, "question_sets.exists_locked", "A question set with that name already exists and belongs to someone else.")
	message.SetString(lang, "question_sets.exists_append", "A question set named %s already exists. You can add questions to it here.")
	message.SetString(lang, "question_sets.cannot_edit", "You can only edit question sets you own.")
	message.SetString(lang, "question_sets.cannot_delete", "You can only delete question sets you own.")
	message.SetString(lang, "question_sets.name_taken", "Another question set already uses this name.")
	message.SetString(lang, "question_sets.not_found", "That question set does not exist.")

	// Questions
	message.SetString(lang, "questions.add", "Add question")
	message.SetString(lang, "questions.new_title", "New question")
	message.SetString(lang, "questions.edit_title", "Edit question")
	message.SetString(lang, "questions.delete_title", "Delete question")
	message.SetString(lang, "questions.delete_prompt", "This removes the question and every answer given to it.")
	message.SetString(lang, "questions.empty", "This set has no questions yet.")
	message.SetString(lang, "questions.added", "Question added.")
	message.SetString(lang, "questions.updated", "Question updated.")
	message.SetString(lang, "questions.deleted", "Question deleted.")
	message.SetString(lang, "questions.cannot_add", "You can only add questions to sets you own.")
	message.SetString(lang, "questions.cannot_edit", "You can only edit questions in sets you own.")
	message.SetString(lang, "questions.cannot_delete", "You can only delete questions in sets you own.")
	message.SetString(lang, "questions.not_found", "That question does not exist.")
	message.SetString(lang, "difficulty.easy", "Easy")
	message.SetString(lang, "difficulty.medium", "Medium")
	message.SetString(lang, "difficulty.hard", "Hard")

	// Practice
	message.SetString(lang, "practice.title", "Practice")
	message.SetString(lang, "practice.intro", "Pick a question set and answer its questions one at a time.")
	message.SetString(lang, "practice.empty", "There are no question sets to practice yet.")
	message.SetString(lang, "practice.start", "Start practice")
	message.SetString(lang, "practice.progress", "Question %d of %d")
	message.SetString(lang, "practice.save_next", "Save and continue")
	message.SetString(lang, "practice.no_questions", "That question set has no questions yet.")
	message.SetString(lang, "practice.completed", "Practice complete. Here is your summary.")
	message.SetString(lang, "practice.review_title", "Session review")
	message.SetString(lang, "practice.complete_title", "Practice complete")
	message.SetString(lang, "practice.no_answer", "No answer yet.")
	message.SetString(lang, "practice.rating", "Self rating: %d/5")
	message.SetString(lang, "practice.resume", "Resume")
	message.SetString(lang, "practice.back_to_history", "Back to history")
	message.SetString(lang, "sessions.not_found", "That practice session does not exist.")

	// History
	message.SetString(lang, "history.title", "History")
	message.SetString(lang, "history.empty", "You have not practiced yet.")
	message.SetString(lang, "history.set", "Question set")
	message.SetString(lang, "history.started", "Started")
	message.SetString(lang, "history.progress", "Progress")
	message.SetString(lang, "history.answered", "%d of %d answered")
	message.SetString(lang, "history.review", "Review")

	// Errors
	message.SetString(lang, "error.title", "Something went wrong")
	message.SetString(lang, "error.body", "We could not show this page. Please try again.")
	message.SetString(lang, "error.not_found_title", "Page not found")
	message.SetString(lang, "error.not_found_body", "The page you are looking for does not exist.")
	message.SetString(lang, "error.back", "Back to practice")
}
