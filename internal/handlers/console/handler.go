// Package console implements the interactive command loop. Input is one
// whitespace-delimited token stream, so command arguments may span lines.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/dungeon-sim/internal/entities"
	"github.com/KirkDiggler/dungeon-sim/internal/services/dungeon"
)

// DefaultPrompt is printed before each command read
const DefaultPrompt = "Enter command: "

// Handler reads commands from a token stream and dispatches them to the
// dungeon service
type Handler struct {
	service dungeon.Service
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	Service dungeon.Service // Required
	Input   io.Reader       // Required
	Output  io.Writer       // Required
	Prompt  string          // Optional
}

// NewHandler creates a new console handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Service == nil {
		panic("dungeon service is required")
	}
	if cfg.Input == nil || cfg.Output == nil {
		panic("input and output streams are required")
	}

	scanner := bufio.NewScanner(cfg.Input)
	scanner.Split(bufio.ScanWords)

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Handler{
		service: cfg.Service,
		scanner: scanner,
		out:     cfg.Output,
		prompt:  prompt,
	}
}

// Run loops until exit or end of input. Bad input is reported and the
// loop continues; nothing here is fatal.
func (h *Handler) Run(ctx context.Context) error {
	for {
		fmt.Fprint(h.out, h.prompt)

		command, ok := h.next()
		if !ok {
			return nil
		}

		switch command {
		case "add":
			h.handleAdd(ctx)
		case "print":
			h.handlePrint(ctx)
		case "save":
			h.handleSave(ctx)
		case "load":
			h.handleLoad(ctx)
		case "battle":
			h.handleBattle(ctx)
		case "exit":
			return nil
		default:
			fmt.Fprintln(h.out, "Unknown command")
		}
	}
}

// next reads one whitespace-delimited token
func (h *Handler) next() (string, bool) {
	if !h.scanner.Scan() {
		return "", false
	}
	return h.scanner.Text(), true
}

// handleAdd consumes all four argument tokens before validating any of
// them, so bad arguments never bleed into the next command read
func (h *Handler) handleAdd(ctx context.Context) {
	kindKeyword, ok1 := h.next()
	name, ok2 := h.next()
	xToken, ok3 := h.next()
	yToken, ok4 := h.next()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		fmt.Fprintln(h.out, "Missing arguments for add")
		return
	}

	kind, ok := entities.KindFromKeyword(kindKeyword)
	if !ok {
		fmt.Fprintln(h.out, "Unknown NPC kind")
		return
	}

	x, errX := strconv.Atoi(xToken)
	y, errY := strconv.Atoi(yToken)
	if errX != nil || errY != nil {
		fmt.Fprintln(h.out, "Coordinates must be integers")
		return
	}

	if _, err := h.service.AddNPC(ctx, &dungeon.AddNPCInput{
		Kind: kind,
		Name: name,
		X:    x,
		Y:    y,
	}); err != nil {
		fmt.Fprintln(h.out, err.Error())
	}
}

func (h *Handler) handlePrint(ctx context.Context) {
	for _, npc := range h.service.ListNPCs(ctx) {
		fmt.Fprintln(h.out, npc.Render())
	}
}

func (h *Handler) handleSave(ctx context.Context) {
	target, ok := h.next()
	if !ok {
		fmt.Fprintln(h.out, "Missing target for save")
		return
	}

	if err := h.service.Save(ctx, target); err != nil {
		fmt.Fprintln(h.out, err.Error())
	}
}

func (h *Handler) handleLoad(ctx context.Context) {
	target, ok := h.next()
	if !ok {
		fmt.Fprintln(h.out, "Missing target for load")
		return
	}

	if err := h.service.Load(ctx, target); err != nil {
		fmt.Fprintln(h.out, err.Error())
	}
}

func (h *Handler) handleBattle(ctx context.Context) {
	rangeToken, ok := h.next()
	if !ok {
		fmt.Fprintln(h.out, "Missing range for battle")
		return
	}

	withinRange, err := strconv.ParseFloat(rangeToken, 64)
	if err != nil {
		fmt.Fprintln(h.out, "Range must be a number")
		return
	}

	if _, err := h.service.Battle(ctx, withinRange); err != nil {
		fmt.Fprintln(h.out, err.Error())
	}
}
