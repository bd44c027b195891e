// Package lukaz is a client for the Lukaz AI platform REST API.
//
// # Overview
//
// Every Client method maps to exactly one HTTP request against one of three
// fixed environments. There is no caching, no retrying and no state beyond
// the API key, which is sent as the x-api-key header on every request.
//
//	client, err := lukaz.New(os.Getenv("LUKAZ_API_KEY"), "prod")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.SubmitPrompt(ctx, boardID, lukaz.PromptBody{
//	    Prompt: "What is this board about?",
//	})
//
// # Environments
//
//   - prod:  https://europe-west1-lukaz-api.cloudfunctions.net (default)
//   - stage: https://europe-west1-lukaz-stage.cloudfunctions.net
//   - dev:   https://europe-west1-lukaz-dev.cloudfunctions.net
//
// Unknown selectors resolve to prod.
//
// # Endpoints
//
// Sessions and users:
//   - POST /startSession/
//   - GET  /user/
//
// Boards:
//   - GET  /board/
//   - GET  /board/:id
//   - POST /board/
//   - POST /board/:id         (update, or {"deleted": true})
//
// Files:
//   - POST /file/:boardId     (upload, or {"fileName": ...} to delete)
//
// Prompts:
//   - POST /prompt/:boardId   (submit)
//   - GET  /prompt/
//   - GET  /prompt/:id
//   - GET  /prompt/:boardId/:promptId
//   - POST /prompt/:id        (update, or {"deleted": true})
//   - POST /audio/:promptId
//   - POST /transcript/:boardId
//
// Instructions:
//   - GET  /instruction/
//   - GET  /instruction/:id
//   - POST /instruction/
//   - POST /instruction/:id   (update, or {"deleted": true})
//
// # Error Handling
//
// Every failed call returns an error wrapping *Error. Its Kind is KindServer
// when the API answered with a non-2xx status (StatusCode and StatusText are
// set), or KindTransport when no usable response was received. Both are
// logged through the configured hclog.Logger with a link to the API's error
// reference. Blank path identifiers and invalid uploads are rejected before
// any request is made.
//
// See https://docs.lukaz.ai/ for the full API reference.
package lukaz
