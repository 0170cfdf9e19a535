package insight

// welcomeMessage greets a user with no habits yet.
const welcomeMessage = "Welcome to HabitFlow! Start by adding your first habit. Small, consistent actions lead to remarkable results. 🌱"

// motivationalQuotes is the fallback pool used when fewer than two insights
// were generated, so the panel is never empty once habits exist.
var motivationalQuotes = []string{
	"Every day is a fresh start. Make it count! 🌟",
	"Small steps lead to big transformations. Keep going! 🚀",
	"Consistency is the key to unlocking your potential. 🔑",
	"You're building something amazing, one habit at a time. 💪",
	"Progress, not perfection. You're doing great! ⭐",
	"The only bad workout is the one that didn't happen. Same goes for habits! 🏃",
	"Your future self will thank you for starting today. 🙏",
	"Believe in the power of compound progress. 📈",
}

// celebrationMessages fires on a 100% completed day.
var celebrationMessages = []string{
	"🎉 Incredible! You're on fire today!",
	"🌟 Amazing work! Your consistency is inspiring!",
	"🏆 Champion status! Keep crushing those habits!",
	"💫 You're unstoppable! What a streak!",
	"🚀 To the moon! Your dedication is paying off!",
}

// warningMessages fires in the evening when the day is falling behind.
var warningMessages = []string{
	"⚠️ Don't break the chain! You've got habits waiting for you.",
	"🔔 Gentle reminder: Your habits miss you today!",
	"⏰ Time flies! Make sure to complete your daily habits.",
}
