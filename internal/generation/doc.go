// Package generation contains the trivia generation core: category
// selection with coverage tracking, prompt construction, response
// validation and the retrying orchestrator. It talks to external LLM
// services only through the TextGenerator boundary interface, keeping the
// application core decoupled from any particular provider SDK.
package generation
