package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/model"

	"github.com/spf13/cobra"
)

// itemFlags holds the field flags of one items subcommand.
type itemFlags struct {
	id      string
	name    string
	price   float64
	qty     int
	peanuts bool
}

var addFlags, setFlags itemFlags

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the shopping list",
	RunE:  runItemsList,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items, including ones hidden by the peanut filter",
	Args:  cobra.NoArgs,
	RunE:  runItemsList,
}

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item",
	Args:  cobra.NoArgs,
	RunE:  runItemsAdd,
}

var itemsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Change fields of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsSet,
}

var itemsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove an item",
	Args:    cobra.ExactArgs(1),
	RunE:    runItemsRm,
}

func init() {
	itemsAddCmd.Flags().StringVar(&addFlags.id, "id", "", "Item id (generated when empty)")
	itemsAddCmd.Flags().StringVar(&addFlags.name, "name", "", "Item name")
	itemsAddCmd.Flags().Float64Var(&addFlags.price, "price", 0, "Unit price in dollars")
	itemsAddCmd.Flags().IntVar(&addFlags.qty, "qty", 1, "Quantity")
	itemsAddCmd.Flags().BoolVar(&addFlags.peanuts, "peanuts", false, "Item contains peanuts")

	itemsSetCmd.Flags().StringVar(&setFlags.name, "name", "", "Item name")
	itemsSetCmd.Flags().Float64Var(&setFlags.price, "price", 0, "Unit price in dollars")
	itemsSetCmd.Flags().IntVar(&setFlags.qty, "qty", 0, "Quantity")
	itemsSetCmd.Flags().BoolVar(&setFlags.peanuts, "peanuts", false, "Item contains peanuts")

	itemsCmd.AddCommand(itemsListCmd, itemsAddCmd, itemsSetCmd, itemsRmCmd)
	rootCmd.AddCommand(itemsCmd)
}

func runItemsList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(s.plan.Items) == 0 {
		fmt.Println("\n  No items.")
		return nil
	}

	t := itemsTable(s.plan.Items)
	t.Title = fmt.Sprintf("Items (%d)", len(s.plan.Items))
	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	if s.plan.PeanutFreeOnly {
		fmt.Println(cli.RenderMuted("  Peanut filter is on: items marked yes are left out of totals."))
	}
	return nil
}

func runItemsAdd(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	it, err := s.plan.AddItem(model.Item{
		ID:              addFlags.id,
		Name:            addFlags.name,
		Price:           addFlags.price,
		Quantity:        addFlags.qty,
		ContainsPeanuts: addFlags.peanuts,
	})
	if err != nil {
		return fmt.Errorf("adding item: %w", err)
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Added %s (%s)\n", displayName(it), it.ID)
	return nil
}

func runItemsSet(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	flags := cmd.Flags()
	it, err := s.plan.UpdateItem(args[0], func(it *model.Item) {
		if flags.Changed("name") {
			it.Name = setFlags.name
		}
		if flags.Changed("price") {
			it.Price = setFlags.price
		}
		if flags.Changed("qty") {
			it.Quantity = setFlags.qty
		}
		if flags.Changed("peanuts") {
			it.ContainsPeanuts = setFlags.peanuts
		}
	})
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  %s: %d x %s = %s\n", displayName(it), it.Quantity,
		cli.FormatCost(it.Price), cli.FormatCost(it.LineCost()))
	return nil
}

func runItemsRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.plan.RemoveItem(args[0]); err != nil {
		return fmt.Errorf("removing item: %w", err)
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Removed %s\n", args[0])
	return nil
}
