package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Hello serves the plain-text landing page.
func Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello World!"))
}

// SuperSimple returns a static greeting.
func SuperSimple(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "hello Earth!")
}

// Parameters greets by query string, refusing minors.
func Parameters(w http.ResponseWriter, r *http.Request) {
	greet(w, r.URL.Query().Get("name"), r.URL.Query().Get("age"))
}

// URLVariables greets by path segments, refusing minors.
func URLVariables(w http.ResponseWriter, r *http.Request) {
	greet(w, chi.URLParam(r, "name"), chi.URLParam(r, "age"))
}

func greet(w http.ResponseWriter, name, rawAge string) {
	age, err := strconv.Atoi(strings.TrimSpace(rawAge))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid age")
		return
	}

	// A cases.Caser is not safe for concurrent use; build one per request.
	titled := cases.Title(language.Und).String(name)
	if age < 18 {
		writeMessage(w, http.StatusUnauthorized, fmt.Sprintf("Sorry %s, you aren't old enough, get lost.", titled))
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Welcome back %s.", titled))
}
