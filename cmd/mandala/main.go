// Command mandala animates and inspects petal mandalas.
package main

func main() {
	Execute()
}
