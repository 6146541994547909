// Command su3 is a small console driver over the su3 library:
// inspect irreps, decompose tensor products, and print fusion tables.
package main

func main() {
	Execute()
}
