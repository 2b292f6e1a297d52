// Package hooks runs the user's pre_load and post_save scripts.
//
// Hooks live in the hooks directory under the store's base directory and
// are named after their kind. A command runs pre_load before it reads the
// store and post_save after it has written it; the event name (new_entry,
// list_entries, ...) is passed as the only argument. A missing hook is
// skipped.
//
// Hooks run in the base directory with these variables added to the
// environment:
//
//	PASSAGE_DIR            base directory
//	PASSAGE_STORAGE_FILE   encrypted storage file
//	PASSAGE_INVOCATION_ID  shared by the hooks of one command
//	PASSAGE_HOOK_EVENT     same as the argument
//
// Each line a hook writes is echoed prefixed with the hook name.
package hooks
