package main

/* zhdeck
Builds Chinese flashcard notes from a CEDICT-format dictionary and a
curriculum word list. Every word of the list is looked up in the
dictionary; when the dictionary has several entries for it, the
preferred one is picked using an override table and a preference for
common nouns over proper nouns and cross references. Erhua variants
borrow the definitions of the word without the final 儿.
The resulting notes are written as JSON lines or stored in MySQL,
where they can be listed, searched and deleted.
*/

func main() {
	Execute()
}
