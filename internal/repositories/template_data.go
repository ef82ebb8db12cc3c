package repositories

import "tripweaver/internal/models/response_models"

// Static predefined-trip catalog. Inert data, keyed by template id.
func predefinedTrips() map[string]TripTemplate {
	return map[string]TripTemplate{
		"paris-adventure": {
			TripID:         "paris-adventure",
			Destination:    "Paris, France",
			Duration:       5,
			NumTravelers:   2,
			Interests:      []string{"History", "Art", "Food", "Culture"},
			Budget:         "mid-range",
			TravelStyle:    "relaxed",
			FoodPreference: "not-specified",
			Itinerary: []response_models.DayPlan{
				{
					Day: 1,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Flight to Paris",
							Description: "Departure flight to Paris Charles de Gaulle Airport (CDG)",
							Notes:       "Arrive at the airport 3 hours before departure",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Arrival in Paris",
							Description: "Arrive at Paris Charles de Gaulle Airport (CDG)",
							Notes:       "Take the RER B train or taxi to your hotel",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Hotel Check-in",
							Description: "Check in to your hotel and rest after the flight",
							Notes:       "Consider having dinner at a nearby restaurant",
						},
					},
				},
				{
					Day: 2,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Eiffel Tower",
							Description: "Start your Paris adventure with a visit to the iconic Eiffel Tower. Take in the breathtaking views of the city from the top.",
							Notes:       "Book tickets in advance to avoid long queues",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Le Marais",
							Description: "Explore the historic Le Marais district and enjoy lunch at a traditional French bistro.",
							Notes:       "Try the local specialties like croque-monsieur or quiche",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Louvre Museum",
							Description: "Visit the world-famous Louvre Museum to see masterpieces like the Mona Lisa and Venus de Milo.",
							Notes:       "Free entry on first Sunday of each month",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Seine River Cruise",
							Description: "Take a romantic evening cruise along the Seine River, admiring the illuminated monuments.",
							Notes:       "Best views during sunset",
						},
					},
				},
				{
					Day: 3,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Notre-Dame Cathedral",
							Description: "Visit the magnificent Notre-Dame Cathedral and explore its stunning architecture.",
							Notes:       "Currently under restoration, but still worth visiting",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Latin Quarter",
							Description: "Enjoy lunch in the vibrant Latin Quarter, known for its student life and charming cafes.",
							Notes:       "Try the local bistros and patisseries",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Sainte-Chapelle",
							Description: "Admire the stunning stained glass windows of Sainte-Chapelle.",
							Notes:       "Combined ticket available with Conciergerie",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Montmartre",
							Description: "Explore the artistic neighborhood of Montmartre and enjoy dinner with a view of the city.",
							Notes:       "Visit Sacré-Cœur for sunset views",
						},
					},
				},
				{
					Day: 4,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Palace of Versailles",
							Description: "Take a day trip to the magnificent Palace of Versailles.",
							Notes:       "Book tickets in advance and arrive early to avoid crowds",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Versailles Gardens",
							Description: "Enjoy a picnic lunch in the beautiful gardens of Versailles.",
							Notes:       "Bring your own food or purchase from local vendors",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Grand Trianon",
							Description: "Visit the Grand Trianon and Marie Antoinette's Estate.",
							Notes:       "Included in the Palace ticket",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Return to Paris",
							Description: "Return to Paris and enjoy dinner in a local restaurant.",
							Notes:       "Consider dining in the Saint-Germain-des-Prés area",
						},
					},
				},
				{
					Day: 5,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Hotel Check-out",
							Description: "Check out from your hotel and store luggage if needed",
							Notes:       "Most hotels offer luggage storage service",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Last-minute Shopping",
							Description: "Visit Galeries Lafayette or other shopping areas for souvenirs",
							Notes:       "Don't forget to get your VAT refund if eligible",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Flight Home",
							Description: "Transfer to Charles de Gaulle Airport (CDG) for your return flight",
							Notes:       "Arrive at the airport 3 hours before departure",
						},
					},
				},
			},
			Hotels: []response_models.Hotel{
				{
					Name:        "Hotel Le Bristol Paris",
					PriceRange:  "mid-range",
					Description: "Luxury hotel in the heart of Paris, near the Champs-Élysées",
					Location:    "112 rue du Faubourg Saint Honoré, 75008 Paris",
					Website:     "https://www.oetkercollection.com/hotels/le-bristol-paris/",
				},
				{
					Name:        "Hotel Lutetia",
					PriceRange:  "mid-range",
					Description: "Art Deco hotel in the Saint-Germain-des-Prés district",
					Location:    "45 Boulevard Raspail, 75006 Paris",
					Website:     "https://www.hotellutetia.com/",
				},
				{
					Name:        "Hotel Plaza Athénée",
					PriceRange:  "mid-range",
					Description: "Iconic luxury hotel with views of the Eiffel Tower",
					Location:    "25 Avenue Montaigne, 75008 Paris",
					Website:     "https://www.dorchestercollection.com/en/paris/hotel-plaza-athenee/",
				},
			},
			GeneralTips: []string{
				"Purchase a Paris Museum Pass for discounted entry to major attractions",
				"Use the Metro for convenient transportation around the city",
				"Book restaurant reservations in advance, especially for popular places",
				"Be aware of pickpockets in tourist areas",
				"Consider purchasing a Paris Visite travel card for unlimited public transport",
				"Book airport transfers in advance for convenience",
				"Check flight schedules and book tickets early for better prices",
			},
		},
		"tokyo-explorer": {
			TripID:         "tokyo-explorer",
			Destination:    "Tokyo, Japan",
			Duration:       7,
			NumTravelers:   2,
			Interests:      []string{"Culture", "Food", "Technology", "Shopping"},
			Budget:         "mid-range",
			TravelStyle:    "fast-paced",
			FoodPreference: "not-specified",
			Itinerary: []response_models.DayPlan{
				{
					Day: 1,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Flight to Tokyo",
							Description: "Departure flight to Tokyo Narita International Airport (NRT)",
							Notes:       "Arrive at the airport 3 hours before departure",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Arrival in Tokyo",
							Description: "Arrive at Tokyo Narita International Airport (NRT)",
							Notes:       "Take the Narita Express or limousine bus to your hotel",
						},
					},
				},
				{
					Day: 2,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Senso-ji Temple",
							Description: "Start your Tokyo adventure at the oldest Buddhist temple in Tokyo.",
							Notes:       "Visit early morning to avoid crowds",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Asakusa",
							Description: "Explore the traditional district of Asakusa and enjoy authentic Japanese cuisine.",
							Notes:       "Try the local street food and tempura restaurants",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Tokyo Skytree",
							Description: "Visit the tallest structure in Japan for panoramic views of Tokyo.",
							Notes:       "Book tickets in advance for better prices",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Odaiba",
							Description: "Experience the futuristic entertainment district of Odaiba.",
							Notes:       "Great for shopping and dining with a view",
						},
					},
				},
				{
					Day: 3,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Tsukiji Outer Market",
							Description: "Explore the famous fish market and enjoy fresh sushi for breakfast.",
							Notes:       "Arrive early for the best selection",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Ginza",
							Description: "Visit Tokyo's upscale shopping district and enjoy lunch at a high-end restaurant.",
							Notes:       "Many department stores have excellent food halls",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Imperial Palace",
							Description: "Tour the beautiful gardens of the Imperial Palace.",
							Notes:       "Book guided tours in advance",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Shibuya",
							Description: "Experience the famous Shibuya Crossing and vibrant nightlife.",
							Notes:       "Visit the Hachiko statue and enjoy the neon lights",
						},
					},
				},
				{
					Day: 4,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Asakusa",
							Description: "Visit the traditional district of Asakusa and explore its local markets.",
							Notes:       "Try the local street food and souvenirs",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Ginza",
							Description: "Visit Tokyo's upscale shopping district and enjoy lunch at a high-end restaurant.",
							Notes:       "Many department stores have excellent food halls",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Ueno",
							Description: "Visit the Ueno Royal Museum and enjoy the art collections.",
							Notes:       "Free entry on weekends",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Shinjuku",
							Description: "Explore the vibrant nightlife of Shinjuku and visit a local izakaya.",
							Notes:       "Try the local specialties and trendy bars",
						},
					},
				},
				{
					Day: 5,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Akihabara",
							Description: "Visit the electronics and anime district of Akihabara.",
							Notes:       "Explore the many shops and arcades",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Kanda",
							Description: "Enjoy lunch in the historic Kanda district and visit the local shrine.",
							Notes:       "Try the local specialties and traditional sweets",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Tokyo Station",
							Description: "Visit Tokyo Station and explore its architecture and local markets.",
							Notes:       "Try the local food and souvenirs",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Shibuya",
							Description: "Experience the famous Shibuya Crossing and vibrant nightlife.",
							Notes:       "Visit the Hachiko statue and enjoy the neon lights",
						},
					},
				},
				{
					Day: 6,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Hakone",
							Description: "Take a scenic train ride to Hakone and enjoy the natural beauty.",
							Notes:       "Visit the Hakone Shrine and Lake Ashi",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Odawara",
							Description: "Enjoy lunch in the charming town of Odawara and visit the local shrine.",
							Notes:       "Try the local specialties and traditional sweets",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Tobu Railway Museum",
							Description: "Visit the Tobu Railway Museum and learn about Japanese railway history.",
							Notes:       "Free entry on weekends",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Shinkansen",
							Description: "Take a Shinkansen bullet train to Kyoto.",
							Notes:       "Enjoy the high-speed train journey",
						},
					},
				},
				{
					Day: 7,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Kyoto",
							Description: "Start your day in Kyoto and visit the famous Fushimi Inari Shrine.",
							Notes:       "Try to visit early in the morning to avoid crowds",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Pontocho",
							Description: "Enjoy lunch in the charming Pontocho district and visit the local shrine.",
							Notes:       "Try the local specialties and traditional sweets",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Kinkaku-ji",
							Description: "Visit the Golden Pavilion and enjoy its unique architecture.",
							Notes:       "Store your luggage at the station before sightseeing",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Flight Home",
							Description: "Transfer to Kansai International Airport (KIX) for your return flight",
							Notes:       "Arrive at the airport 3 hours before departure",
						},
					},
				},
			},
			Hotels: []response_models.Hotel{
				{
					Name:        "The Peninsula Tokyo",
					PriceRange:  "mid-range",
					Description: "Luxury hotel in the heart of Marunouchi district",
					Location:    "1-8-1 Yurakucho, Chiyoda-ku, Tokyo 100-0006",
					Website:     "https://www.peninsula.com/en/tokyo",
				},
				{
					Name:        "Mandarin Oriental Tokyo",
					PriceRange:  "mid-range",
					Description: "Five-star hotel in the Nihonbashi district",
					Location:    "2-1-1 Nihonbashi Muromachi, Chuo-ku, Tokyo 103-8328",
					Website:     "https://www.mandarinoriental.com/tokyo",
				},
				{
					Name:        "Park Hotel Tokyo",
					PriceRange:  "mid-range",
					Description: "Art-focused hotel in the Shiodome district",
					Location:    "1-7-1 Higashi-Shimbashi, Minato-ku, Tokyo 105-7227",
					Website:     "https://www.parkhoteltokyo.com/",
				},
			},
			GeneralTips: []string{
				"Purchase a Japan Rail Pass before arriving in Japan",
				"Get a Suica or Pasmo card for convenient public transportation",
				"Learn basic Japanese phrases for better interaction with locals",
				"Carry cash as many places don't accept credit cards",
				"Download offline maps and translation apps",
			},
		},
		"bali-paradise": {
			TripID:         "bali-paradise",
			Destination:    "Bali, Indonesia",
			Duration:       5,
			NumTravelers:   2,
			Interests:      []string{"Beach", "Culture", "Nature", "Relaxation"},
			Budget:         "mid-range",
			TravelStyle:    "relaxed",
			FoodPreference: "not-specified",
			Itinerary: []response_models.DayPlan{
				{
					Day: 1,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Flight to Bali",
							Description: "Departure flight to Ngurah Rai International Airport (DPS)",
							Notes:       "Arrive at the airport 3 hours before departure",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Arrival in Bali",
							Description: "Arrive at Ngurah Rai International Airport (DPS)",
							Notes:       "Take a taxi or arrange hotel transfer to your accommodation",
						},
					},
				},
				{
					Day: 2,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Ubud Monkey Forest",
							Description: "Start your Bali adventure with a visit to the sacred monkey forest sanctuary.",
							Notes:       "Keep belongings secure from curious monkeys",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Ubud Palace",
							Description: "Explore the royal palace and enjoy traditional Balinese cuisine.",
							Notes:       "Try the local warungs for authentic food",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Tegallalang Rice Terraces",
							Description: "Visit the famous rice terraces and learn about traditional farming methods.",
							Notes:       "Best photo opportunities in the morning or late afternoon",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Ubud Art Market",
							Description: "Browse local crafts and souvenirs at the traditional market.",
							Notes:       "Remember to bargain for better prices",
						},
					},
				},
				{
					Day: 3,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Mount Batur",
							Description: "Early morning hike to watch the sunrise from the volcano.",
							Notes:       "Start the hike around 4 AM for sunrise views",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Kintamani",
							Description: "Enjoy lunch with a view of the volcano and Lake Batur.",
							Notes:       "Try the local specialty, Babi Guling",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Tirta Empul Temple",
							Description: "Visit the holy water temple and participate in the purification ritual.",
							Notes:       "Bring a change of clothes for the water ritual",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Ubud",
							Description: "Relax with a traditional Balinese massage and spa treatment.",
							Notes:       "Book spa treatments in advance",
						},
					},
				},
				{
					Day: 4,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Sacred Monkey Forest Sanctuary",
							Description: "Visit the Sacred Monkey Forest Sanctuary and see the playful monkeys.",
							Notes:       "Keep belongings secure from curious monkeys",
						},
						{
							TimeOfDay:   "Lunch",
							Location:    "Ubud",
							Description: "Enjoy lunch in Ubud and explore its local markets.",
							Notes:       "Try the local specialties and traditional sweets",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Tegallalang Rice Terraces",
							Description: "Visit the famous Tegallalang Rice Terraces and learn about traditional farming methods.",
							Notes:       "Best photo opportunities in the morning or late afternoon",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Ubud",
							Description: "Enjoy a traditional Balinese dinner and watch a cultural dance performance.",
							Notes:       "Try the local specialties and traditional sweets",
						},
					},
				},
				{
					Day: 5,
					Activities: []response_models.Activity{
						{
							TimeOfDay:   "Morning",
							Location:    "Hotel Check-out",
							Description: "Check out from your hotel and store luggage if needed",
							Notes:       "Most hotels offer luggage storage service",
						},
						{
							TimeOfDay:   "Afternoon",
							Location:    "Last-minute Shopping",
							Description: "Visit local markets for souvenirs and gifts",
							Notes:       "Remember to bargain for better prices",
						},
						{
							TimeOfDay:   "Evening",
							Location:    "Flight Home",
							Description: "Transfer to Ngurah Rai International Airport (DPS) for your return flight",
							Notes:       "Arrive at the airport 3 hours before departure",
						},
					},
				},
			},
			Hotels: []response_models.Hotel{
				{
					Name:        "Four Seasons Resort Bali at Sayan",
					PriceRange:  "mid-range",
					Description: "Luxury resort in the heart of Ubud",
					Location:    "Sayan, Ubud, Bali 80571, Indonesia",
					Website:     "https://www.fourseasons.com/sayan/",
				},
				{
					Name:        "Hanging Gardens of Bali",
					PriceRange:  "mid-range",
					Description: "Unique resort with private infinity pools",
					Location:    "Desa Buahan, Payangan, Ubud, Bali 80571, Indonesia",
					Website:     "https://www.hanginggardensofbali.com/",
				},
				{
					Name:        "Munduk Moding Plantation",
					PriceRange:  "mid-range",
					Description: "Boutique resort with stunning views",
					Location:    "Banjar Dinas Asah, Desa Gobleg, Kecamatan Banjar, Buleleng, Bali 81152, Indonesia",
					Website:     "https://www.mundukmodingplantation.com/",
				},
			},
			GeneralTips: []string{
				"Rent a scooter for convenient transportation",
				"Respect local customs and dress modestly when visiting temples",
				"Carry cash for small purchases and tips",
				"Book popular activities and restaurants in advance",
				"Be prepared for occasional rain showers",
			},
		},
	}
}
