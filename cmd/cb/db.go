// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var dbCmd = &cobra.Command{
	Use:   "db [statement]",
	Short: "Run SQL against the catalog database",
	Long: `Db is an escape hatch for ad-hoc queries against the catalog. Pass a
statement as an argument to run it once, or no arguments for an
interactive shell. Inside the shell, ".tables" lists tables, ".schema"
prints the schema, and ".quit" exits.`,
	RunE: runDB,
}

func runDB(cmd *cobra.Command, args []string) error {
	st, err := catalog.Open(databasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) > 0 {
		return execStatement(st, strings.Join(args, " "))
	}

	fmt.Printf("Connected to %s\n", st.Path())
	fmt.Println(`Enter SQL statements, ".tables", ".schema", or ".quit".`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("sql> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ".quit" || line == ".exit":
			return nil
		case line == ".tables":
			line = `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`
		case line == ".schema":
			line = `SELECT sql FROM sqlite_master WHERE sql IS NOT NULL`
		}

		if err := execStatement(st, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// execStatement runs one statement. Reads print a column header and the
// result rows; writes print the affected row count.
func execStatement(st *catalog.Store, stmt string) error {
	db := st.DB()

	if !isQuery(stmt) {
		res, err := db.Exec(stmt)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		fmt.Printf("%d row(s) affected\n", n)
		return nil
	}

	rows, err := db.Query(stmt)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(cols, " | "))

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	count := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		fields := make([]string, len(vals))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				fields[i] = "NULL"
			case []byte:
				fields[i] = string(t)
			default:
				fields[i] = fmt.Sprint(t)
			}
		}
		fmt.Println(strings.Join(fields, " | "))
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	fmt.Printf("(%d row(s))\n", count)
	return nil
}

func isQuery(stmt string) bool {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return false
	}
	head := strings.ToUpper(fields[0])
	return head == "SELECT" || head == "PRAGMA" || head == "EXPLAIN" || head == "WITH"
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
