package main

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// StartUI runs the terminal front end until the user quits.
func StartUI(store *ConfigStore) error {
	app := tview.NewApplication()

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		cfg := store.Get()

		colorIndex := 0
		if human, _ := cfg.HumanDisc(); human == Black {
			colorIndex = 1
		}

		levels := make([]string, 0, MaxLevel)
		for l := MinLevel; l <= MaxLevel; l++ {
			label := fmt.Sprint(l)
			switch l {
			case MinLevel:
				label += " (Easy)"
			case MaxLevel:
				label += " (Hard)"
			}
			levels = append(levels, label)
		}

		form := tview.NewForm()
		form.
			AddDropDown("Your color", []string{"White (moves first)", "Black"}, colorIndex, func(option string, index int) {
				c := store.Get()
				c.HumanColor = "white"
				if index == 1 {
					c.HumanColor = "black"
				}
				store.Update(c)
			}).
			AddDropDown("Level", levels, cfg.Level-MinLevel, func(option string, index int) {
				c := store.Get()
				c.Level = MinLevel + index
				store.Update(c)
			}).
			AddCheckbox("Show valid moves", cfg.ShowValidMoves, func(checked bool) {
				c := store.Get()
				c.ShowValidMoves = checked
				store.Update(c)
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Othello").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		cfg := store.Get()
		human := NewHumanPlayer()
		computer := NewComputerPlayer(cfg.Weights)

		var game *Game
		if humanDisc, _ := cfg.HumanDisc(); humanDisc == Black {
			game = NewGame(computer, human)
		} else {
			game = NewGame(human, computer)
		}

		if err := game.SetLevel(cfg.Level); err != nil {
			log.Warn().Err(err).Msg("level-rejected")
		}

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetTitleColor(tcell.ColorGreen)
		boardTable.SetBorderColor(tcell.ColorGreen)
		boardTable.SetBorders(true)

		statusBox := tview.NewTextView()
		statusBox.SetBorder(true)
		statusBox.SetTitle("Status")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(statusBox, 40, 1, false)

		var status string

		// Cells redraw themselves on every occupant change.
		board := game.Board()
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				boardTable.SetCell(y, x, discCell(board.At(x, y)))
				board.Watch(x, y, func(x, y int, occupant Disc) {
					boardTable.SetCell(y, x, discCell(occupant))
				})
			}
		}

		var thinking int32
		var abandoned bool // set when the player leaves for the start screen

		leave := func() {
			abandoned = true
			atomic.StoreInt32(&thinking, 0)
			human.Cancel()
			showStartScreen()
		}

		updateStatus := func() {
			white, black := game.GetScore()
			spinner := ""
			if game.Thinking() {
				spinner = " ..."
			}

			last := ""
			if history := game.History(); len(history) > 0 {
				if e := history[len(history)-1]; !e.Pass {
					last = fmt.Sprintf("Last: %v %v, %d flipped", e.Player, e.Move, e.Flipped)
				}
			}

			boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn%s ", game.PlayerName(game.Current()), spinner))
			statusBox.SetText(fmt.Sprintf("White: %d\nBlack: %d\nLevel: %d (+/-)\n%s\n%s\n\nEsc: new settings", white, black, game.Level(), last, status))
		}

		// Hints depend on whose turn it is, not on a single cell, so they
		// are refreshed per turn.
		updateHints := func() {
			show := store.Get().ShowValidMoves && game.CurrentPlayer().IsHuman() && !game.IsGameOver()
			for x := 0; x < BoardSize; x++ {
				for y := 0; y < BoardSize; y++ {
					if board.At(x, y) != Blank {
						continue
					}
					if show && board.LegalMove(game.Current(), x, y) {
						hint := tview.NewTableCell("· ")
						hint.SetAlign(tview.AlignCenter)
						hint.SetTextColor(tcell.ColorGreen)
						boardTable.SetCell(y, x, hint)
					} else {
						boardTable.SetCell(y, x, discCell(Blank))
					}
				}
			}
		}

		var processNextTurn func()

		showGameOver := func() {
			result := game.Result()

			text := "The game ended in a tie."
			if result.Winner != Blank {
				text = game.PlayerFor(result.Winner).Name() + " won the game."
			}

			modal := tview.NewModal().
				SetText(fmt.Sprintf("Game over.\n%s\nWhite: %d  Black: %d\n\nPlay again?", text, result.White, result.Black)).
				AddButtons([]string{"Play again", "New settings", "Quit"}).
				SetDoneFunc(func(buttonIndex int, buttonLabel string) {
					switch buttonLabel {
					case "Play again":
						game.Reset()
						app.SetRoot(flex, true).SetFocus(boardTable)
						processNextTurn()
					case "New settings":
						leave()
					default:
						app.Stop()
					}
				})

			app.SetRoot(modal, false).SetFocus(modal)
		}

		processNextTurn = func() {
			if game.IsGameOver() {
				updateHints()
				updateStatus()
				showGameOver()

				return
			}

			player := game.CurrentPlayer()
			turns := game.RequestMove()

			if player.IsHuman() {
				status = "Click on a square that highlights."
			} else {
				status = "Computer is cogitating..."
				atomic.StoreInt32(&thinking, 1)

				ticker := time.NewTicker(250 * time.Millisecond)
				go func() {
					defer ticker.Stop()
					for range ticker.C {
						if atomic.LoadInt32(&thinking) == 0 {
							return
						}
						app.QueueUpdateDraw(updateStatus)
					}
				}()
			}

			updateHints()
			updateStatus()

			// The turn is applied on the event goroutine, which owns the board.
			go func() {
				turn, ok := <-turns

				app.QueueUpdateDraw(func() {
					if !player.IsHuman() {
						atomic.StoreInt32(&thinking, 0)
					}

					if abandoned {
						return
					}

					if !ok {
						log.Debug().Str("player", player.Name()).Msg("request-abandoned")
						return
					}

					mover := game.Current()
					if err := game.Apply(turn); err != nil {
						if !errors.Is(err, ErrStaleTurn) {
							log.Error().Err(err).Msg("apply-turn")
						}
						return
					}

					if turn.Pass {
						log.Info().Str("player", mover.String()).Msg("no-moves")
					}

					processNextTurn()

					if turn.Pass {
						status = fmt.Sprintf("%s had to pass. %s", game.PlayerName(mover), status)
						updateStatus()
					}
				})
			}()
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if !human.Awaiting() {
				return
			}

			if err := human.Submit(column, row); err != nil {
				if !errors.Is(err, ErrNotAwaiting) {
					status = "That square does not flip anything."
					updateStatus()
				}
			}
		})

		boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyEscape {
				leave()
				return nil
			}

			if event.Key() != tcell.KeyRune {
				return event
			}

			level := game.Level()
			switch event.Rune() {
			case '+', '=':
				level++
			case '-', '_':
				level--
			default:
				return event
			}

			// takes effect from the next computer request
			if err := game.SetLevel(level); err == nil {
				c := store.Get()
				c.Level = level
				store.Update(c)
			}
			updateStatus()

			return nil
		})

		app.SetRoot(flex, true).SetFocus(boardTable)
		processNextTurn()
	}

	showStartScreen()

	return app.Run()
}

func discCell(d Disc) *tview.TableCell {
	cell := tview.NewTableCell(getPieceSymbol(d))
	cell.SetAlign(tview.AlignCenter)

	return cell
}

func getPieceSymbol(piece Disc) string {
	switch piece {
	case Black:
		return " ⚫ "
	case White:
		return " ⚪ "
	default:
		return "    "
	}
}
