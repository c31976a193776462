package main

// ErrorKind classifica os erros do serviço para o mapeamento HTTP na borda
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalidArgument
	KindUpstreamUnavailable
	KindInternal
)

// CartError carrega um motivo estável para máquinas (Reason) e uma mensagem
// para humanos. Erros de transporte dos colaboradores nunca chegam ao cliente
// sem passar por aqui.
type CartError struct {
	Kind    ErrorKind
	Reason  string
	Message string
}

func (e *CartError) Error() string {
	return e.Message
}

// notFound cria um erro de recurso inexistente
func notFound(reason, message string) *CartError {
	return &CartError{Kind: KindNotFound, Reason: reason, Message: message}
}

// invalidArgument cria um erro de argumento inválido
func invalidArgument(reason, message string) *CartError {
	return &CartError{Kind: KindInvalidArgument, Reason: reason, Message: message}
}

// upstreamUnavailable cria um erro de colaborador inacessível
func upstreamUnavailable(reason, message string) *CartError {
	return &CartError{Kind: KindUpstreamUnavailable, Reason: reason, Message: message}
}
