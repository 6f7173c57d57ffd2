package ui

import (
	"testing"

	"github.com/ibaryshnikov/game-design/components"
	"github.com/stretchr/testify/assert"
)

func TestJoinItem(t *testing.T) {
	item := JoinItem("localhost:7373")
	assert.True(t, item.Online)
	assert.Equal(t, "localhost:7373", item.Address)
	assert.Equal(t, "Join localhost:7373", item.Label)
}

func TestAddressOr(t *testing.T) {
	assert.Equal(t, "10.0.0.2:7373", addressOr("10.0.0.2:7373", "localhost:7373"))
	assert.Equal(t, "localhost:7373", addressOr("", "localhost:7373"), "empty field joins the default")
}

func TestItemLabel(t *testing.T) {
	item := components.MenuItem{Label: "Fight in pit", Arena: "pit"}
	assert.Equal(t, "> Fight in pit <", ItemLabel(item, true))
	assert.Equal(t, "Fight in pit", ItemLabel(item, false))
}
