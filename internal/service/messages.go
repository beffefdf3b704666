package service

// Fixed user-facing messages for expected conditions. These go through
// the normal response path, never the error path.
const (
	MsgDocumentProcessed = "Document processed successfully."
	MsgAlreadyProcessed  = "Document already processed."

	MsgNotReady = "Please upload a PDF, DOCX, or TXT document first so I can " +
		"answer based on its content."

	MsgNoContext = "I could not retrieve any relevant context from the document. " +
		"Please try rephrasing your question or upload a different document."

	MsgGenerationFallback = "Sorry, I could not generate an answer."
)
