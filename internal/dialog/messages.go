package dialog

const (
	msgStart = "Hello! I am NutriTrack bot. I can help you track your nutrition. " +
		"Type /help to see the list of commands."
	msgHelp = "List of commands:\n" +
		"/start - Start the bot\n" +
		"/help - Show this message\n" +
		"/track - Track your meal\n" +
		"/view - View your meal history\n" +
		"/delete - Delete your meal history\n" +
		"/cancel - Cancel the current operation"

	msgTrackPrompt   = "What did you eat? Please describe your meal."
	msgTracked       = "Meal tracked successfully."
	msgAdviceFailed  = "Meal tracked, but unable to fetch nutritional advice at the moment."
	msgTrackFailed   = "Could not save your meal. Please try again."
	msgNoMeals       = "You have not tracked any meals yet."
	msgHistoryHeader = "Your meal history:\n"

	msgConfirmDelete   = "Are you sure you want to delete your meal history? Type \"yes\" to confirm."
	msgNothingToDelete = "You have no meal history to delete."
	msgDeleted         = "Your meal history has been deleted."
	msgDeleteCancelled = "Delete operation cancelled."

	msgCancelled = "Operation cancelled."
	msgError     = "Something went wrong. Please try again later."

	msgSmallTalkFallback = "I am fine, thank you!"
	msgUnknown           = "I do not understand that command"
)
