package tui

import (
	"time"

	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/service"
	"github.com/jask/basket/internal/shopping"
	"github.com/jask/basket/internal/suggest"
)

type listsMsg []grocery.GroceryList

type listMsg grocery.GroceryList

type addedMsg service.AddResult

type suggestionsMsg []suggest.Suggestion

type storesMsg []shopping.Store

type overviewMsg service.Overview

type feedMsg service.Feed

type statusMsg string

type errMsg struct{ error }

type tickMsg time.Time

type scanExpiredMsg time.Time

type resetMsg struct{}

type createdMsg grocery.GroceryList

type deletedMsg string
