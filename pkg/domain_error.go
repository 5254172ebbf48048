package pkg

// DomainError is the error shape handlers translate into HTTP responses:
// a stable machine code, a human message and the status to answer with.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string { return e.Message }

func NewDomainErrorSimple(code, message string, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body written for a failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
