/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// App is the ranscodec command-line demonstration tool: it drives the
// rans library against real files instead of synthetic in-process
// calls, exercising the distribution adapters, the coder, and the
// wire framing layer end to end.
var App = cli.App{
	Name:      "ranscodec",
	HelpName:  "ranscodec",
	Usage:     "fit, encode, decode and benchmark rANS-coded symbol streams",
	Copyright: "(c) 2011-2026 Frederic Langlet",
	Commands: []*cli.Command{
		&fitCommand,
		&encodeCommand,
		&decodeCommand,
		&benchCommand,
	},
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
