package rabbitmq

const (
	RENDER_REQUESTS_QUEUE    = "render.requests"
	RENDERED_DOCUMENTS_QUEUE = "render.documents"
)
