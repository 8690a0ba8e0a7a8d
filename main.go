/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/julesc00/planetaryApi/cmd"

func main() {
	cmd.Execute()
}
