package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/softjack/futebol-api/services"
)

// Envelope de resposta da API: {"data": ...} em caso de sucesso,
// {"error": {"message", "code"?}} em caso de falha. O formato é contrato
// com o frontend e não deve mudar.
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("corpo contém JSON malformado (caractere %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("corpo contém JSON malformado")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("corpo contém tipo JSON inválido para o campo %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("corpo contém tipo JSON inválido (caractere %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("corpo não pode ser vazio")
		case err.Error() == "http: request body too large":
			return fmt.Errorf("corpo não pode ser maior que %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // erro de programação (destino não é ponteiro)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("corpo deve conter um único valor JSON")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) error {
	js, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func respondData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if err := writeJSON(w, status, dataEnvelope{Data: data}); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message, code string) {
	env := errorEnvelope{Error: apiError{Message: message, Code: code}}
	if err := writeJSON(w, status, env); err != nil {
		slog.Error("falha ao escrever resposta de erro", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("erro interno", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	errorResponse(w, r, http.StatusInternalServerError, "o servidor encontrou um problema e não conseguiu processar a requisição", "internal")
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error(), "")
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	errorResponse(w, r, http.StatusNotFound, "o recurso solicitado não foi encontrado", "not_found")
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message, "unauthorized")
}

// mapServiceErrorToHTTP converte erros da camada de serviço em respostas
// HTTP. Erros de negócio e conflitos respondem 400; o frontend trata a
// mensagem, não o código de status.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		notFoundResponse(w, r)

	case errors.Is(err, services.ErrNaoAutorizado):
		unauthorizedResponse(w, r, err.Error())

	case errors.Is(err, services.ErrCredenciaisInvalidas),
		errors.Is(err, services.ErrEmailJaCadastrado),
		errors.Is(err, services.ErrCodigoEmUso),
		errors.Is(err, services.ErrCodigoObrigatorio),
		errors.Is(err, services.ErrCodigoInvalido),
		errors.Is(err, services.ErrNomeObrigatorio),
		errors.Is(err, services.ErrNovaSenhaObrigatoria),
		errors.Is(err, services.ErrSenhaAtualObrigatoria),
		errors.Is(err, services.ErrSenhaAtualInvalida),
		errors.Is(err, services.ErrTokenInvalido),
		errors.Is(err, services.ErrTokenGoogleInvalido),
		errors.Is(err, services.ErrClientIDObrigatorio),
		errors.Is(err, services.ErrMesmosTimes),
		errors.Is(err, services.ErrJogadorDuplicadoNoTime):
		badRequestResponse(w, r, err)

	default:
		serverErrorResponse(w, r, err)
	}
}

// readIDParam lê um parâmetro de rota numérico positivo.
func readIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("parâmetro %q inválido", name)
	}
	return id, nil
}
