package main

import (
	"context"
	"fmt"
	"strings"

	"bookclient/internal/readinglist"

	"github.com/spf13/cobra"
)

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Manage your reading lists interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			mgr := readinglist.NewManager(a.client, terminalConfirmer{sc: a.scanner}, a.log)
			if err := mgr.Load(cmd.Context()); err != nil {
				return err
			}

			runListsLoop(cmd.Context(), a, mgr)
			return nil
		},
	}
}

func runListsLoop(ctx context.Context, a *app, mgr *readinglist.Manager) {
	fmt.Println("Commands: create, edit <list-id>, reload, quit")

	for {
		printLists(mgr)

		input := prompt(a.scanner, "\nlists> ")
		cmd, arg, _ := strings.Cut(input, " ")
		switch cmd {
		case "create":
			handleCreateList(ctx, a, mgr)
		case "edit":
			handleEditList(ctx, a, mgr, strings.TrimSpace(arg))
		case "reload":
			if err := mgr.Load(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "quit", "exit", "":
			return
		default:
			fmt.Println("Unknown command. Use: create, edit <list-id>, reload, quit")
		}
	}
}

func printLists(mgr *readinglist.Manager) {
	lists := mgr.Lists()
	if len(lists) == 0 {
		fmt.Println("\nNo reading lists yet.")
		return
	}

	fmt.Printf("\n%-24s %-25s %-8s %s\n", "ID", "Name", "Books", "Description")
	fmt.Println(strings.Repeat("-", 85))
	for _, l := range lists {
		fmt.Printf("%-24s %-25s %-8d %s\n",
			truncateString(l.ID, 24),
			truncateString(l.Name, 25),
			len(l.BookIDs),
			truncateString(l.Description, 25))
	}
}

func handleCreateList(ctx context.Context, a *app, mgr *readinglist.Manager) {
	mgr.OpenCreate()
	defer mgr.Close()

	f := readinglist.Form{
		Name:        prompt(a.scanner, "Name: "),
		Description: prompt(a.scanner, "Description (optional): "),
	}
	if err := mgr.SubmitCreate(ctx, f); err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	fmt.Println("Reading list created.")
}

func handleEditList(ctx context.Context, a *app, mgr *readinglist.Manager, id string) {
	if id == "" {
		fmt.Println("Usage: edit <list-id>")
		return
	}

	current, err := mgr.OpenEdit(id)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	defer mgr.Close()

	fmt.Printf("Editing %q. Enter keeps the current value; 'delete' removes the list.\n", current.Name)

	name := prompt(a.scanner, fmt.Sprintf("Name [%s]: ", current.Name))
	if name == "delete" {
		if err := mgr.Delete(ctx); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}
	if name == "" {
		name = current.Name
	}

	description := prompt(a.scanner, fmt.Sprintf("Description [%s]: ", current.Description))
	if description == "" {
		description = current.Description
	}

	if err := mgr.SubmitEdit(ctx, readinglist.Form{Name: name, Description: description}); err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	fmt.Println("Reading list updated.")
}
