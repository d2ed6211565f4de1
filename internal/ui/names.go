package ui

import (
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

const (
	labelPlayerX = "Player X"
	labelPlayerO = "Player O"

	nameFieldWidth = 20
)

// NameForm asks for the player names before a game starts. Cleared fields fall back to the default names.
type NameForm struct {
	form *tview.Form
	req  usecase.StartRequest
}

func NewNameForm(req usecase.StartRequest, onStart func(usecase.StartRequest), onCancel func()) *NameForm {
	nameForm := &NameForm{
		form: tview.NewForm(),
		req:  req,
	}

	nameForm.form.AddInputField(labelPlayerX, entity.DefaultP1Name, nameFieldWidth, nil, nil)
	if req.Mode == entity.LocalMode {
		nameForm.form.AddInputField(labelPlayerO, entity.DefaultP2Name, nameFieldWidth, nil, nil)
	}

	nameForm.form.
		AddButton("Start", func() { onStart(nameForm.Request()) }).
		AddButton("Back", onCancel).
		SetCancelFunc(onCancel)

	nameForm.form.SetBorder(true)
	nameForm.form.SetTitle(" Players ")

	return nameForm
}

func (that *NameForm) Form() *tview.Form {
	return that.form
}

// Request - the start request with the names currently typed in.
func (that *NameForm) Request() usecase.StartRequest {
	req := that.req
	req.P1Name = that.text(labelPlayerX)

	if req.Mode == entity.LocalMode {
		req.P2Name = that.text(labelPlayerO)
	}

	return req
}

func (that *NameForm) text(label string) string {
	field, ok := that.form.GetFormItemByLabel(label).(*tview.InputField)
	if !ok {
		return ""
	}

	return field.GetText()
}
