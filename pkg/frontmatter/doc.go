// Package frontmatter splits a document into its front matter and the
// content that follows, detecting whether the front matter is YAML, TOML
// or JSON and normalizing it into a [value.Value].
//
// # Delimiters
//
// The first non-whitespace characters of the document select the style:
//
//   - "---" opens a block closed by a later "---"
//   - "+++" opens a block closed by a later "+++"
//   - "{" opens a JSON object closed by a later "}"
//
// Any other document has no front matter: [ParseDocument] returns
// [value.Null] and the whole text as content.
//
// # Basic Usage
//
//	doc, err := frontmatter.ParseDocument(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if obj, ok := doc.FrontMatter.(*value.Object); ok {
//		title, _ := obj.Get("title")
//		fmt.Println(title)
//	}
//	fmt.Print(doc.Content)
//
// # Error Handling
//
// The package defines sentinel errors that can be checked with [errors.Is]:
//
//   - [ErrUnparsableFrontMatter]: an opening delimiter was found but no
//     closing delimiter produced a non-empty object
//   - [ErrMultipleDocuments]: a YAML block held several documents
//   - [ErrBadKey]: a YAML key was not a string or number
//   - [ErrUnresolvedAlias]: a YAML alias was used
//   - [ErrMalformedNode]: a YAML node could not be converted
//   - [ErrInvalidJSON], [ErrInvalidTOML], [ErrInvalidYAML]: grammar errors
//     from [ParseJSON], [ParseTOML] and [ParseYAML]
package frontmatter
