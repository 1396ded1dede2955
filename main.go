package main

import "github.com/Issem-Sato/Valutazione-investimento-immobiliare/cmd"

func main() {
	cmd.Execute()
}
