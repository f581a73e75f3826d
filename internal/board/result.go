package board

// Result is the uniform outcome of a board operation. Message is already
// translated; Data is the zero value on failure.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Empty is the payload of operations that return no data.
type Empty struct{}

func succeed[T any](msg string, data T) Result[T] {
	return Result[T]{Success: true, Message: msg, Data: data}
}

func fail[T any](msg string) Result[T] {
	return Result[T]{Message: msg}
}
