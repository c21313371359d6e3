package main

import "github.com/joaoalves07/SE-Destino-de-viagem/cmd"

func main() {
	cmd.Execute()
}
