package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cryptonstudio/crypton-sorted-map/sortedmap"
)

func newDemoCommand() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Insert keys 1..10, remove 10, 9, 4, 3 and print what is left",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), dump)
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "print the tree after every step")
	return cmd
}

func runDemo(w io.Writer, dump bool) error {
	m := sortedmap.NewOrdered[int, int]()
	printTree := func(step string) {
		if dump {
			fmt.Fprintf(w, "# %s\n%s\n", step, m)
		}
	}

	for i := 1; i <= 10; i++ {
		m.Insert(i, i)
	}
	printTree("inserted 1..10")

	for _, key := range []int{10, 9, 4, 3} {
		if _, ok := m.RemoveKey(key); !ok {
			return fmt.Errorf("key %d is missing", key)
		}
		printTree(fmt.Sprintf("removed %d", key))
	}

	for value, ok := m.First(); ok; value, ok = m.Next() {
		fmt.Fprintln(w, value)
	}
	fmt.Fprintf(w, "size: %d\n", m.Size())

	m.RemoveAll()
	return nil
}
