package instantlyclient

import "fmt"

// ExternalServiceError descreve a última falha de uma chamada ao Instantly
type ExternalServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("erro de comunicação com o Instantly: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("Instantly API error %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("Instantly API error %d: %s", e.StatusCode, e.Body)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
