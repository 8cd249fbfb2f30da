package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/bot"
)

func main() {
	s := &session{
		board:      boardstate.NewBoard(false),
		blackLevel: bot.MEDIUM,
		whiteLevel: bot.MEDIUM,
	}
	cmds := commands()

	fmt.Println("nine-by-nine demo shell. Type 'help' for commands, 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		name, args := fields[0], fields[1:]

		if name == "quit" {
			return
		}

		h, ok := cmds[name]
		if !ok {
			fmt.Printf("unknown command %q; try 'help'\n", name)
			continue
		}
		out, err := h(s, args)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
}
