package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "nav.practice", "Praticar")
	message.SetString(lang, "nav.question_sets", "Conjuntos de perguntas")
	message.SetString(lang, "nav.history", "Histórico")
	message.SetString(lang, "nav.login", "Entrar")
	message.SetString(lang, "nav.register", "Cadastrar")
	message.SetString(lang, "nav.logout", "Sair")
	message.SetString(lang, "nav.toggle", "Alternar navegação")
	message.SetString(lang, "nav.signed_in_as", "Conectado como")
	message.SetString(lang, "alert.close", "Fechar")

	message.SetString(lang, "login.title", "Entrar")
	message.SetString(lang, "login.submit", "Entrar")
	message.SetString(lang, "login.no_account", "Não tem uma conta?")
	message.SetString(lang, "login.register_link", "Cadastre-se aqui")
	message.SetString(lang, "login.invalid", "Informe um usuário e senha corretos. Os dois campos diferenciam maiúsculas de minúsculas.")

	message.SetString(lang, "register.title", "Cadastro")
	message.SetString(lang, "register.submit", "Cadastrar")
	message.SetString(lang, "register.cancel", "Cancelar")
	message.SetString(lang, "register.have_account", "Já tem uma conta?")
	message.SetString(lang, "register.login_link", "Entre aqui")
	message.SetString(lang, "register.password_help", "Sua senha precisa ter pelo menos %d caracteres.")
	message.SetString(lang, "register.failed", "Não foi possível criar sua conta. Revise o formulário e tente novamente.")

	message.SetString(lang, "field.username", "Usuário")
	message.SetString(lang, "field.email", "E-mail")
	message.SetString(lang, "field.password", "Senha")
	message.SetString(lang, "field.password_confirm", "Confirmação de senha")
	message.SetString(lang, "field.set_name", "Nome")
	message.SetString(lang, "field.set_name_placeholder", "ex.: Entrevista comportamental")
	message.SetString(lang, "field.question_text", "Pergunta")
	message.SetString(lang, "field.question_text_placeholder", "Conte sobre uma vez em que discordou de um colega.")
	message.SetString(lang, "field.difficulty", "Dificuldade")
	message.SetString(lang, "field.tags", "Etiquetas")
	message.SetString(lang, "field.tags_placeholder", "liderança, conflito")
	message.SetString(lang, "field.tags_help", "Separe as etiquetas com vírgulas.")
	message.SetString(lang, "field.order", "Ordem")
	message.SetString(lang, "field.response", "Sua resposta")
	message.SetString(lang, "field.response_placeholder", "Escreva sua resposta aqui.")
	message.SetString(lang, "field.self_rating", "Autoavaliação")
	message.SetString(lang, "field.self_rating_none", "Sem nota")
	message.SetString(lang, "field.self_rating_help", "Quão bem você respondeu, de %d a %d?")

	message.SetString(lang, "form.required", "Este campo é obrigatório.")
	message.SetString(lang, "form.invalid_email", "Informe um endereço de e-mail válido.")
	message.SetString(lang, "form.password_mismatch", "Os dois campos de senha não conferem.")
	message.SetString(lang, "form.password_too_short", "Esta senha é muito curta. Ela precisa ter pelo menos %d caracteres.")
	message.SetString(lang, "form.username_invalid", "Informe um usuário válido. Use apenas letras, números e os caracteres @/./+/-/_.")
	message.SetString(lang, "form.username_taken", "Já existe um usuário com esse nome.")
	message.SetString(lang, "form.expired", "O formulário expirou. Tente novamente.")
	message.SetString(lang, "form.password_too_common", "Esta senha é muito comum.")
	message.SetString(lang, "form.password_too_long", "Esta senha é muito longa.")
	message.SetString(lang, "form.too_long", "Certifique-se de que o valor tenha no máximo %d caracteres.")
	message.SetString(lang, "form.invalid", "Corrija os erros abaixo.")
	message.SetString(lang, "form.invalid_choice", "Selecione uma opção válida.")
	message.SetString(lang, "form.invalid_number", "Informe um número inteiro.")
	message.SetString(lang, "form.min_value", "Certifique-se de que o valor seja maior ou igual a %d.")
	message.SetString(lang, "form.range", "Escolha um valor entre %d e %d.")

	message.SetString(lang, "flash.registered", "Boas-vindas, %s! Sua conta foi criada.")
	message.SetString(lang, "flash.logged_in", "Bem-vindo de volta, %s.")
	message.SetString(lang, "flash.logged_out", "Você saiu da sua conta.")
	message.SetString(lang, "flash.auth_unavailable", "O acesso está temporariamente indisponível. Tente novamente mais tarde.")
	message.SetString(lang, "flash.login_required", "Entre para ver esta página.")
	message.SetString(lang, "flash.practice_unavailable", "A prática está temporariamente indisponível. Tente novamente mais tarde.")

	message.SetString(lang, "action.edit", "Editar")
	message.SetString(lang, "action.delete", "Excluir")
	message.SetString(lang, "action.save", "Salvar")
	message.SetString(lang, "action.cancel", "Cancelar")
	message.SetString(lang, "action.confirm_delete", "Sim, excluir")

	message.SetString(lang, "question_sets.title", "Conjuntos de perguntas")
	message.SetString(lang, "question_sets.new", "Novo conjunto")
	message.SetString(lang, "question_sets.new_title", "Novo conjunto de perguntas")
	message.SetString(lang, "question_sets.create", "Criar conjunto")
	message.SetString(lang, "question_sets.edit", "Renomear conjunto")
	message.SetString(lang, "question_sets.edit_title", "Renomear conjunto de perguntas")
	message.SetString(lang, "question_sets.delete", "Excluir conjunto")
	message.SetString(lang, "question_sets.delete_title", "Excluir conjunto de perguntas")
	message.SetString(lang, "question_sets.delete_prompt", "Isto remove o conjunto com todas as perguntas e sessões de prática.")
	message.SetString(lang, "question_sets.question_count", "%d perguntas")
	message.SetString(lang, "question_sets.empty", "Ainda não há conjuntos de perguntas. Crie um para começar a praticar.")
	message.SetString(lang, "question_sets.back", "Voltar aos conjuntos de perguntas")
	message.SetString(lang, "question_sets.created", "Conjunto criado. Adicione algumas perguntas.")
	message.SetString(lang, "question_sets.updated", "Conjunto renomeado.")
	message.SetString(lang, "question_sets.deleted", "Conjunto excluído.")
	message.SetString(lang, "question_sets.exists_locked", "Já existe um conjunto com esse nome e ele pertence a outra pessoa.")
	message.SetString(lang, "question_sets.exists_append", "Já existe um conjunto chamado %s. Você pode adicionar perguntas a ele aqui.")
	message.SetString(lang, "question_sets.cannot_edit", "Você só pode editar conjuntos que são seus.")
	message.SetString(lang, "question_sets.cannot_delete", "Você só pode excluir conjuntos que são seus.")
	message.SetString(lang, "question_sets.name_taken", "Outro conjunto já usa esse nome.")
	message.SetString(lang, "question_sets.not_found", "Esse conjunto de perguntas não existe.")

	message.SetString(lang, "questions.add", "Adicionar pergunta")
	message.SetString(lang, "questions.new_title", "Nova pergunta")
	message.SetString(lang, "questions.edit_title", "Editar pergunta")
	message.SetString(lang, "questions.delete_title", "Excluir pergunta")
	message.SetString(lang, "questions.delete_prompt", "Isto remove a pergunta e todas as respostas dadas a ela.")
	message.SetString(lang, "questions.empty", "Este conjunto ainda não tem perguntas.")
	message.SetString(lang, "questions.added", "Pergunta adicionada.")
	message.SetString(lang, "questions.updated", "Pergunta atualizada.")
	message.SetString(lang, "questions.deleted", "Pergunta excluída.")
	message.SetString(lang, "questions.cannot_add", "Você só pode adicionar perguntas a conjuntos que são seus.")
	message.SetString(lang, "questions.cannot_edit", "Você só pode editar perguntas de conjuntos que são seus.")
	message.SetString(lang, "questions.cannot_delete", "Você só pode excluir perguntas de conjuntos que são seus.")
	message.SetString(lang, "questions.not_found", "Essa pergunta não existe.")
	message.SetString(lang, "difficulty.easy", "Fácil")
	message.SetString(lang, "difficulty.medium", "Média")
	message.SetString(lang, "difficulty.hard", "Difícil")

	message.SetString(lang, "practice.title", "Praticar")
	message.SetString(lang, "practice.intro", "Escolha um conjunto e responda às perguntas uma de cada vez.")
	message.SetString(lang, "practice.empty", "Ainda não há conjuntos para praticar.")
	message.SetString(lang, "practice.start", "Começar prática")
	message.SetString(lang, "practice.progress", "Pergunta %d de %d")
	message.SetString(lang, "practice.save_next", "Salvar e continuar")
	message.SetString(lang, "practice.no_questions", "Esse conjunto ainda não tem perguntas.")
	message.SetString(lang, "practice.completed", "Prática concluída. Veja o seu resumo.")
	message.SetString(lang, "practice.review_title", "Revisão da sessão")
	message.SetString(lang, "practice.complete_title", "Prática concluída")
	message.SetString(lang, "practice.no_answer", "Ainda sem resposta.")
	message.SetString(lang, "practice.rating", "Autoavaliação: %d/5")
	message.SetString(lang, "practice.resume", "Continuar")
	message.SetString(lang, "practice.back_to_history", "Voltar ao histórico")
	message.SetString(lang, "sessions.not_found", "Essa sessão de prática não existe.")

	message.SetString(lang, "history.title", "Histórico")
	message.SetString(lang, "history.empty", "Você ainda não praticou.")
	message.SetString(lang, "history.set", "Conjunto")
	message.SetString(lang, "history.started", "Início")
	message.SetString(lang, "history.progress", "Progresso")
	message.SetString(lang, "history.answered", "%d de %d respondidas")
	message.SetString(lang, "history.review", "Revisar")

	message.SetString(lang, "error.title", "Algo deu errado")
	message.SetString(lang, "error.body", "Não foi possível exibir esta página. Tente novamente.")
	message.SetString(lang, "error.not_found_title", "Página não encontrada")
	message.SetString(lang, "error.not_found_body", "A página que você procura não existe.")
	message.SetString(lang, "error.back", "Voltar para a prática")
}
