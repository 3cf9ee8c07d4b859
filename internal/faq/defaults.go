package faq

// DefaultEntries is the clinic's built-in knowledge base, in match order.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:       "faq1",
			Keywords: []string{"services", "physiotherapy", "offer"},
			Content: "Our website offers a comprehensive range of physiotherapy services designed to meet diverse needs. This includes: \n" +
				"1. **Post-operative Rehabilitation:** Helping you regain strength and mobility after surgery. \n" +
				"2. **Sports Injury Recovery:** Specialized programs for athletes to return to peak performance. \n" +
				"3. **Chronic Pain Management:** Strategies and therapies to alleviate long-term pain. \n" +
				"4. **Neurological Physiotherapy:** Support for conditions like stroke, Parkinson's, and MS. \n" +
				"5. **Geriatric Physiotherapy:** Tailored exercises for seniors to maintain independence and mobility. \n" +
				"6. **Pediatric Physiotherapy:** Early intervention and treatment for children with developmental or physical challenges. \n" +
				"7. **Women's Health Physiotherapy:** Addressing conditions specific to women, including pre/post-natal care. \n\n" +
				"You can find more detailed descriptions of each service on our 'Services' page.",
		},
		{
			ID:       "faq2",
			Keywords: []string{"book", "appointment", "schedule", "consultation"},
			Content: "Booking an appointment is easy! You can: \n" +
				"1. Visit our 'Book Appointment' page on the website and fill out the secure online form with your details and preferred time. \n" +
				"2. Call us directly at **+91 9876543210** during our business hours (Monday-Friday, 9 AM to 5 PM IST). Our friendly staff will assist you. \n\n" +
				"We recommend booking in advance to secure your preferred slot.",
		},
		{
			ID:       "faq3",
			Keywords: []string{"location", "address", "clinic", "find us", "where are you"},
			Content:  "Our clinic is conveniently located at **[Your Clinic Address Here]**. We are open from Monday to Friday, 9 AM to 5 PM IST. Please note that we are closed on weekends and all public holidays. We look forward to welcoming you!",
		},
		{
			ID:       "contact1",
			Keywords: []string{"contact", "callback", "speak", "reach out", "email", "phone"},
			Content: "If you need to speak with a specialist or have a specific query, you can: \n" +
				"1. Request a callback through the 'Contact Us' page on our website by filling a short form. \n" +
				"2. Send us an email at **support@yourwebsite.com**. We aim to respond within 24 business hours. \n" +
				"3. Call us directly at **+91 9876543210** during our operational hours.",
		},
		{
			ID:       "profile_update",
			Keywords: []string{"profile", "update", "change username", "bio", "picture"},
			Content:  "You can easily update your profile information after logging in. Navigate to the 'Profile' section where you can modify your bio, upload a new profile picture, and even change your username. Remember to save your changes!",
		},
		{
			ID:       "password_reset",
			Keywords: []string{"forgot password", "reset password", "login issue"},
			Content: "If you've forgotten your password, don't worry! \n" +
				"1. Go to the login page. \n" +
				"2. Click on the 'Forgot Password' link. \n" +
				"3. Enter the email address associated with your account. \n" +
				"4. We will send you a secure password reset link to that email address. Please check your spam folder if you don't see it in your inbox within a few minutes.",
		},
		{
			ID:       "about_us",
			Keywords: []string{"about us", "mission", "vision", "team"},
			Content:  "We are dedicated to providing personalized and effective physiotherapy care. Our mission is to empower individuals to achieve optimal physical health and well-being through expert guidance and compassionate support. Our team consists of highly qualified and experienced physiotherapists committed to your recovery journey.",
		},
		{
			ID:       "pricing",
			Keywords: []string{"cost", "price", "fees", "how much"},
			Content:  "Our pricing varies depending on the type and duration of the physiotherapy service. For detailed information on consultation fees and package rates, please contact us directly or refer to the 'Pricing' section on our website (if available). We also offer various payment options.",
		},
		{
			ID:       "preparation",
			Keywords: []string{"prepare for appointment", "first visit", "what to bring"},
			Content:  "For your first appointment, please bring any relevant medical reports, X-rays, or MRI scans. It's also advisable to wear comfortable clothing that allows for easy movement during assessment and exercises. Arriving a few minutes early can help you complete any necessary paperwork.",
		},
		{
			ID:       "telehealth",
			Keywords: []string{"online therapy", "virtual session", "tele-physio"},
			Content:  "Yes, we offer telehealth physiotherapy sessions! This allows you to receive expert care from the comfort of your home. You'll need a stable internet connection and a device with a camera and microphone. Please contact us to learn more about scheduling a virtual session.",
		},
		{
			ID:       "unrelated",
			Keywords: []string{"weather", "capital", "random"},
			Content:  "I am an AI assistant focused on physiotherapy services. While I can't provide information on unrelated topics like weather or general knowledge, I'd be happy to help with any questions about our clinic or services!",
		},
	}
}

// DefaultKnowledgeBase builds the knowledge base from DefaultEntries.
func DefaultKnowledgeBase() *KnowledgeBase {
	return MustKnowledgeBase(DefaultEntries())
}
