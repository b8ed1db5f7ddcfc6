// Command naturalbreaks classifies numeric data into Jenks–Fisher natural
// breaks from the command line.
//
//	naturalbreaks breaks -k 5 data.txt
//	seq 1 100 | naturalbreaks classify -k 4 -o yaml
package main

import "os"

func main() {
	if err := newApp().command().Execute(); err != nil {
		os.Exit(1)
	}
}
