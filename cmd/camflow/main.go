// Command camflow validates, converts, and inspects CAM project files
// and user preferences.
package main

import "github.com/openmill/camflow/internal/cli"

func main() {
	cli.Execute()
}
