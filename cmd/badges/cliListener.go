package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
	"nostrbadges/engine/actors"
	"nostrbadges/engine/library"
	"nostrbadges/messaging/relays"
	"nostrbadges/state/badges"
)

// cliListener is a cheap and nasty way to drive the badge engine during
// development. It listens for keypresses and executes commands.
func cliListener(interrupt chan struct{}) {
	fmt.Println("BADGE COMMANDS:\nd: list badge definitions\nm: my badge view (refreshes the editor)\na: accept the first pending badge\nx: reject the last accepted badge\nu: move the last accepted badge up\nn: move the first accepted badge down\nw: current wallet\nc: engine config\nq: quit\nSee cliListener.go for more")
	transport := relays.Transport{}
	var editor *badges.Editor
	for {
		r, k, err := keyboard.GetSingleKey()
		if err != nil {
			panic(err)
		}
		str := string(r)
		switch str {
		default:
			if k == 13 {
				fmt.Println("\n-----------------------------------")
				break
			}
			if r == 0 {
				break
			}
			fmt.Println("Key " + str + " is not bound to any test procedures. See main.cliListener for more details.")
		case "q":
			close(interrupt)
			return
		case "w":
			fmt.Printf("Current Wallet: \n%s\n", actors.MyWallet().Account)
		case "c":
			fmt.Println("CURRENT CONFIG")
			for key, v := range actors.MakeOrGetConfig().AllSettings() {
				fmt.Printf("\nKey: %s; Value: %v\n", key, v)
			}
		case "d":
			ctx, cancel := opCtx()
			definitions := badges.Definitions(ctx, transport, 0)
			cancel()
			fmt.Printf("BADGE DEFINITIONS (%d)\n", len(definitions))
			for _, definition := range definitions {
				badge := badges.AssembleBadge(definition, nil)
				if badge.BadgeID == "" {
					continue
				}
				printBadge(badge)
			}
		case "m":
			editor = refreshEditor(transport)
			printEditor(editor)
		case "a":
			editor = ensureEditor(editor, transport)
			id := pickBadge(editor, false, true)
			if id == "" {
				fmt.Println("No pending badges to accept")
				break
			}
			ctx, cancel := opCtx()
			reportEdit("accept", editor.Accept(ctx, id))
			cancel()
			printEditor(editor)
		case "x":
			editor = ensureEditor(editor, transport)
			id := pickBadge(editor, true, false)
			if id == "" {
				fmt.Println("No accepted badges to reject")
				break
			}
			ctx, cancel := opCtx()
			reportEdit("reject", editor.Reject(ctx, id))
			cancel()
			printEditor(editor)
		case "u":
			editor = ensureEditor(editor, transport)
			id := pickBadge(editor, true, false)
			if id == "" {
				fmt.Println("No accepted badges to move")
				break
			}
			ctx, cancel := opCtx()
			reportEdit("move up", editor.MoveUp(ctx, id))
			cancel()
			printEditor(editor)
		case "n":
			editor = ensureEditor(editor, transport)
			id := pickBadge(editor, true, true)
			if id == "" {
				fmt.Println("No accepted badges to move")
				break
			}
			ctx, cancel := opCtx()
			reportEdit("move down", editor.MoveDown(ctx, id))
			cancel()
			printEditor(editor)
		}
	}
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Second*30)
}

func refreshEditor(transport relays.Transport) *badges.Editor {
	account := actors.MyWallet().Account
	ctx, cancel := opCtx()
	defer cancel()
	view := badges.UserBadges(ctx, transport, account)
	return badges.NewEditor(account, view, transport)
}

func ensureEditor(editor *badges.Editor, transport relays.Transport) *badges.Editor {
	if editor != nil {
		return editor
	}
	return refreshEditor(transport)
}

// pickBadge returns the award event id of the last accepted badge, or the
// first pending one, depending on what the edit needs.
func pickBadge(editor *badges.Editor, accepted bool, first bool) library.Sha256 {
	var picked library.Sha256
	for _, badge := range editor.Badges() {
		if badge.Accepted != accepted {
			continue
		}
		picked = badge.AwardEventID
		if first {
			return picked
		}
	}
	return picked
}

func reportEdit(op string, err error) {
	if err != nil {
		library.LogCLI(fmt.Sprintf("could not %s: %s", op, err.Error()), 2)
		return
	}
	library.LogCLI(fmt.Sprintf("%s done, profile badges republished", op), 4)
}

func printEditor(editor *badges.Editor) {
	view := editor.Badges()
	fmt.Printf("MY BADGES (%d) for %s\n", len(view), editor.Subject())
	for _, badge := range view {
		status := "pending"
		if badge.Accepted {
			status = fmt.Sprintf("accepted #%d", badge.Order)
		}
		fmt.Printf("[%s] ", status)
		printBadge(badge.Badge)
	}
}

func printBadge(badge badges.Badge) {
	line := fmt.Sprintf("%s (%s) by %s", badge.Name, badge.BadgeID, badge.IssuerPubkey)
	if badge.Description != "" {
		line += ": " + badge.Description
	}
	if width, height, ok := badges.ImageDimensions(badge.Image); ok {
		line += fmt.Sprintf(" [%dx%d]", width, height)
	}
	if badge.IssuedAt > 0 {
		line += " issued " + time.Unix(badge.IssuedAt, 0).Format("2006-01-02")
	}
	fmt.Println(strings.TrimSpace(line))
}
