package location

// builtinEntries is the default gazetteer. Localities come first, grouped by
// metro area, followed by major cities.
var builtinEntries = []Entry{
	{Name: "Connaught Place", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6315, Lng: 77.2167}, Category: CategoryArea},
	{Name: "Karol Bagh", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6519, Lng: 77.1909}, Category: CategoryArea},
	{Name: "Lajpat Nagar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.5677, Lng: 77.2436}, Category: CategoryArea},
	{Name: "Saket", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.5245, Lng: 77.2066}, Category: CategoryArea},
	{Name: "Vasant Kunj", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.5200, Lng: 77.1591}, Category: CategoryArea},
	{Name: "Dwarka", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.5921, Lng: 77.0460}, Category: CategoryArea},
	{Name: "Rohini", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.7041, Lng: 77.1025}, Category: CategoryArea},
	{Name: "Janakpuri", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6219, Lng: 77.0814}, Category: CategoryArea},
	{Name: "Pitampura", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6942, Lng: 77.1314}, Category: CategoryArea},
	{Name: "Mayur Vihar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6127, Lng: 77.2773}, Category: CategoryArea},
	{Name: "Preet Vihar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6127, Lng: 77.2773}, Category: CategoryArea},
	{Name: "Laxmi Nagar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6345, Lng: 77.2771}, Category: CategoryArea},
	{Name: "Rajouri Garden", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6469, Lng: 77.1200}, Category: CategoryArea},
	{Name: "Tilak Nagar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6414, Lng: 77.0917}, Category: CategoryArea},
	{Name: "Punjabi Bagh", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6742, Lng: 77.1347}, Category: CategoryArea},
	{Name: "Paschim Vihar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6692, Lng: 77.1056}, Category: CategoryArea},
	{Name: "Anand Vihar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6469, Lng: 77.3152}, Category: CategoryArea},
	{Name: "Shahdara", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6692, Lng: 77.2889}, Category: CategoryArea},
	{Name: "Dilshad Garden", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6892, Lng: 77.3181}, Category: CategoryArea},
	{Name: "Vivek Vihar", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6725, Lng: 77.3181}, Category: CategoryArea},
	{Name: "Cyber City", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.4947, Lng: 77.0869}, Category: CategoryArea},
	{Name: "Sector 14", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.4595, Lng: 77.0266}, Category: CategoryArea},
	{Name: "Sector 29", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.4601, Lng: 77.0648}, Category: CategoryArea},
	{Name: "MG Road", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.4601, Lng: 77.0648}, Category: CategoryArea},
	{Name: "Golf Course Road", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.4421, Lng: 77.0502}, Category: CategoryArea},
	{Name: "Sohna Road", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.3670, Lng: 77.0820}, Category: CategoryArea},
	{Name: "Sector 18", ParentCity: "Noida", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.5678, Lng: 77.3261}, Category: CategoryArea},
	{Name: "Sector 62", ParentCity: "Noida", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.6139, Lng: 77.3648}, Category: CategoryArea},
	{Name: "Greater Noida", ParentCity: "Greater Noida", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.4744, Lng: 77.5040}, Category: CategoryCity},
	{Name: "Bandra", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0596, Lng: 72.8295}, Category: CategoryArea},
	{Name: "Andheri", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1136, Lng: 72.8697}, Category: CategoryArea},
	{Name: "Juhu", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1075, Lng: 72.8263}, Category: CategoryArea},
	{Name: "Powai", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1197, Lng: 72.9056}, Category: CategoryArea},
	{Name: "Worli", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0176, Lng: 72.8118}, Category: CategoryArea},
	{Name: "Colaba", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.9067, Lng: 72.8147}, Category: CategoryArea},
	{Name: "Fort", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.9338, Lng: 72.8356}, Category: CategoryArea},
	{Name: "Dadar", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0176, Lng: 72.8562}, Category: CategoryArea},
	{Name: "Kurla", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0728, Lng: 72.8826}, Category: CategoryArea},
	{Name: "Malad", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1864, Lng: 72.8493}, Category: CategoryArea},
	{Name: "Borivali", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.2307, Lng: 72.8567}, Category: CategoryArea},
	{Name: "Kandivali", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.2043, Lng: 72.8527}, Category: CategoryArea},
	{Name: "Goregaon", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1663, Lng: 72.8526}, Category: CategoryArea},
	{Name: "Versova", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1317, Lng: 72.8138}, Category: CategoryArea},
	{Name: "Lokhandwala", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1368, Lng: 72.8261}, Category: CategoryArea},
	{Name: "Santacruz", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0896, Lng: 72.8656}, Category: CategoryArea},
	{Name: "Vile Parle", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0990, Lng: 72.8470}, Category: CategoryArea},
	{Name: "Khar", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0728, Lng: 72.8370}, Category: CategoryArea},
	{Name: "Linking Road", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0544, Lng: 72.8301}, Category: CategoryArea},
	{Name: "Koramangala", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9279, Lng: 77.6271}, Category: CategoryArea},
	{Name: "Indiranagar", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9719, Lng: 77.6412}, Category: CategoryArea},
	{Name: "Whitefield", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9698, Lng: 77.7500}, Category: CategoryArea},
	{Name: "Electronic City", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.8456, Lng: 77.6603}, Category: CategoryArea},
	{Name: "BTM Layout", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9165, Lng: 77.6101}, Category: CategoryArea},
	{Name: "Jayanagar", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9237, Lng: 77.5937}, Category: CategoryArea},
	{Name: "JP Nagar", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9081, Lng: 77.5831}, Category: CategoryArea},
	{Name: "HSR Layout", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9116, Lng: 77.6473}, Category: CategoryArea},
	{Name: "Marathahalli", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9591, Lng: 77.6974}, Category: CategoryArea},
	{Name: "Sarjapur Road", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9010, Lng: 77.6874}, Category: CategoryArea},
	{Name: "Bannerghatta Road", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.8456, Lng: 77.6603}, Category: CategoryArea},
	{Name: "Hebbal", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 13.0358, Lng: 77.5970}, Category: CategoryArea},
	{Name: "Yeshwantpur", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 13.0284, Lng: 77.5546}, Category: CategoryArea},
	{Name: "Rajajinagar", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9991, Lng: 77.5554}, Category: CategoryArea},
	{Name: "Malleshwaram", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 13.0031, Lng: 77.5727}, Category: CategoryArea},
	{Name: "Basavanagudi", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9395, Lng: 77.5731}, Category: CategoryArea},
	{Name: "T Nagar", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 13.0418, Lng: 80.2341}, Category: CategoryArea},
	{Name: "Anna Nagar", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 13.0850, Lng: 80.2101}, Category: CategoryArea},
	{Name: "Adyar", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 13.0067, Lng: 80.2206}, Category: CategoryArea},
	{Name: "Velachery", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 12.9750, Lng: 80.2200}, Category: CategoryArea},
	{Name: "OMR", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 12.8406, Lng: 80.2270}, Category: CategoryArea, Aliases: []string{"Old Mahabalipuram Road"}},
	{Name: "Tambaram", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 12.9249, Lng: 80.1000}, Category: CategoryArea},
	{Name: "Porur", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 13.0381, Lng: 80.1564}, Category: CategoryArea},
	{Name: "Chrompet", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 12.9516, Lng: 80.1462}, Category: CategoryArea},
	{Name: "Banjara Hills", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4126, Lng: 78.4482}, Category: CategoryArea},
	{Name: "Jubilee Hills", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4239, Lng: 78.4738}, Category: CategoryArea},
	{Name: "HITEC City", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4435, Lng: 78.3772}, Category: CategoryArea},
	{Name: "Gachibowli", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4399, Lng: 78.3487}, Category: CategoryArea},
	{Name: "Kondapur", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4616, Lng: 78.3622}, Category: CategoryArea},
	{Name: "Madhapur", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4483, Lng: 78.3915}, Category: CategoryArea},
	{Name: "Secunderabad", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.5040, Lng: 78.5030}, Category: CategoryArea},
	{Name: "Begumpet", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.4399, Lng: 78.4482}, Category: CategoryArea},
	{Name: "Koregaon Park", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5362, Lng: 73.8958}, Category: CategoryArea},
	{Name: "Baner", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5679, Lng: 73.7797}, Category: CategoryArea},
	{Name: "Wakad", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5975, Lng: 73.7898}, Category: CategoryArea},
	{Name: "Hinjewadi", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5912, Lng: 73.7389}, Category: CategoryArea},
	{Name: "Kothrud", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5074, Lng: 73.8077}, Category: CategoryArea},
	{Name: "Aundh", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5593, Lng: 73.8078}, Category: CategoryArea},
	{Name: "Viman Nagar", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5679, Lng: 73.9143}, Category: CategoryArea},
	{Name: "Hadapsar", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5089, Lng: 73.9260}, Category: CategoryArea},
	{Name: "Salt Lake", ParentCity: "Kolkata", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5958, Lng: 88.4497}, Category: CategoryArea},
	{Name: "Park Street", ParentCity: "Kolkata", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5448, Lng: 88.3426}, Category: CategoryArea},
	{Name: "Ballygunge", ParentCity: "Kolkata", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5354, Lng: 88.3643}, Category: CategoryArea},
	{Name: "Howrah", ParentCity: "Kolkata", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5958, Lng: 88.2636}, Category: CategoryArea},
	{Name: "New Town", ParentCity: "Kolkata", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5958, Lng: 88.4497}, Category: CategoryArea},
	{Name: "Satellite", ParentCity: "Ahmedabad", State: "Gujarat", Coordinates: Coordinates{Lat: 23.0267, Lng: 72.5090}, Category: CategoryArea},
	{Name: "Vastrapur", ParentCity: "Ahmedabad", State: "Gujarat", Coordinates: Coordinates{Lat: 23.0395, Lng: 72.5240}, Category: CategoryArea},
	{Name: "Bopal", ParentCity: "Ahmedabad", State: "Gujarat", Coordinates: Coordinates{Lat: 23.0395, Lng: 72.4240}, Category: CategoryArea},
	{Name: "Prahlad Nagar", ParentCity: "Ahmedabad", State: "Gujarat", Coordinates: Coordinates{Lat: 23.0267, Lng: 72.5090}, Category: CategoryArea},
	{Name: "Malviya Nagar", ParentCity: "Jaipur", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.8854, Lng: 75.8144}, Category: CategoryArea},
	{Name: "Vaishali Nagar", ParentCity: "Jaipur", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.9354, Lng: 75.7272}, Category: CategoryArea},
	{Name: "C Scheme", ParentCity: "Jaipur", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.9124, Lng: 75.7873}, Category: CategoryArea},
	{Name: "Mansarovar", ParentCity: "Jaipur", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.8854, Lng: 75.7647}, Category: CategoryArea},
	{Name: "Delhi", ParentCity: "Delhi", State: "Delhi", Coordinates: Coordinates{Lat: 28.6139, Lng: 77.2090}, Category: CategoryCity},
	{Name: "Mumbai", ParentCity: "Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0760, Lng: 72.8777}, Category: CategoryCity},
	{Name: "Bangalore", ParentCity: "Bangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9716, Lng: 77.5946}, Category: CategoryCity, Aliases: []string{"Bengaluru"}},
	{Name: "Chennai", ParentCity: "Chennai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 13.0827, Lng: 80.2707}, Category: CategoryCity},
	{Name: "Kolkata", ParentCity: "Kolkata", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5726, Lng: 88.3639}, Category: CategoryCity},
	{Name: "Hyderabad", ParentCity: "Hyderabad", State: "Telangana", Coordinates: Coordinates{Lat: 17.3850, Lng: 78.4867}, Category: CategoryCity},
	{Name: "Pune", ParentCity: "Pune", State: "Maharashtra", Coordinates: Coordinates{Lat: 18.5204, Lng: 73.8567}, Category: CategoryCity},
	{Name: "Ahmedabad", ParentCity: "Ahmedabad", State: "Gujarat", Coordinates: Coordinates{Lat: 23.0225, Lng: 72.5714}, Category: CategoryCity},
	{Name: "Jaipur", ParentCity: "Jaipur", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.9124, Lng: 75.7873}, Category: CategoryCity},
	{Name: "Lucknow", ParentCity: "Lucknow", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 26.8467, Lng: 80.9462}, Category: CategoryCity},
	{Name: "Kanpur", ParentCity: "Kanpur", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 26.4499, Lng: 80.3319}, Category: CategoryCity},
	{Name: "Nagpur", ParentCity: "Nagpur", State: "Maharashtra", Coordinates: Coordinates{Lat: 21.1458, Lng: 79.0882}, Category: CategoryCity},
	{Name: "Indore", ParentCity: "Indore", State: "Madhya Pradesh", Coordinates: Coordinates{Lat: 22.7196, Lng: 75.8577}, Category: CategoryCity},
	{Name: "Thane", ParentCity: "Thane", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.2183, Lng: 72.9781}, Category: CategoryCity},
	{Name: "Bhopal", ParentCity: "Bhopal", State: "Madhya Pradesh", Coordinates: Coordinates{Lat: 23.2599, Lng: 77.4126}, Category: CategoryCity},
	{Name: "Visakhapatnam", ParentCity: "Visakhapatnam", State: "Andhra Pradesh", Coordinates: Coordinates{Lat: 17.6868, Lng: 83.2185}, Category: CategoryCity},
	{Name: "Patna", ParentCity: "Patna", State: "Bihar", Coordinates: Coordinates{Lat: 25.5941, Lng: 85.1376}, Category: CategoryCity},
	{Name: "Vadodara", ParentCity: "Vadodara", State: "Gujarat", Coordinates: Coordinates{Lat: 22.3072, Lng: 73.1812}, Category: CategoryCity},
	{Name: "Ghaziabad", ParentCity: "Ghaziabad", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.6692, Lng: 77.4538}, Category: CategoryCity},
	{Name: "Ludhiana", ParentCity: "Ludhiana", State: "Punjab", Coordinates: Coordinates{Lat: 30.9010, Lng: 75.8573}, Category: CategoryCity},
	{Name: "Agra", ParentCity: "Agra", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 27.1767, Lng: 78.0081}, Category: CategoryCity},
	{Name: "Nashik", ParentCity: "Nashik", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.9975, Lng: 73.7898}, Category: CategoryCity},
	{Name: "Faridabad", ParentCity: "Faridabad", State: "Haryana", Coordinates: Coordinates{Lat: 28.4089, Lng: 77.3178}, Category: CategoryCity},
	{Name: "Meerut", ParentCity: "Meerut", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.9845, Lng: 77.7064}, Category: CategoryCity},
	{Name: "Rajkot", ParentCity: "Rajkot", State: "Gujarat", Coordinates: Coordinates{Lat: 22.3039, Lng: 70.8022}, Category: CategoryCity},
	{Name: "Kalyan-Dombivli", ParentCity: "Kalyan", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.2403, Lng: 73.1305}, Category: CategoryCity},
	{Name: "Vasai-Virar", ParentCity: "Vasai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.4912, Lng: 72.8054}, Category: CategoryCity},
	{Name: "Varanasi", ParentCity: "Varanasi", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 25.3176, Lng: 82.9739}, Category: CategoryCity},
	{Name: "Srinagar", ParentCity: "Srinagar", State: "Jammu and Kashmir", Coordinates: Coordinates{Lat: 34.0837, Lng: 74.7973}, Category: CategoryCity},
	{Name: "Aurangabad", ParentCity: "Aurangabad", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.8762, Lng: 75.3433}, Category: CategoryCity},
	{Name: "Dhanbad", ParentCity: "Dhanbad", State: "Jharkhand", Coordinates: Coordinates{Lat: 23.7957, Lng: 86.4304}, Category: CategoryCity},
	{Name: "Amritsar", ParentCity: "Amritsar", State: "Punjab", Coordinates: Coordinates{Lat: 31.6340, Lng: 74.8723}, Category: CategoryCity},
	{Name: "Navi Mumbai", ParentCity: "Navi Mumbai", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.0330, Lng: 73.0297}, Category: CategoryCity},
	{Name: "Allahabad", ParentCity: "Allahabad", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 25.4358, Lng: 81.8463}, Category: CategoryCity, Aliases: []string{"Prayagraj"}},
	{Name: "Ranchi", ParentCity: "Ranchi", State: "Jharkhand", Coordinates: Coordinates{Lat: 23.3441, Lng: 85.3096}, Category: CategoryCity},
	{Name: "Howrah", ParentCity: "Howrah", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5958, Lng: 88.2636}, Category: CategoryCity},
	{Name: "Coimbatore", ParentCity: "Coimbatore", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 11.0168, Lng: 76.9558}, Category: CategoryCity},
	{Name: "Jabalpur", ParentCity: "Jabalpur", State: "Madhya Pradesh", Coordinates: Coordinates{Lat: 23.1815, Lng: 79.9864}, Category: CategoryCity},
	{Name: "Gwalior", ParentCity: "Gwalior", State: "Madhya Pradesh", Coordinates: Coordinates{Lat: 26.2183, Lng: 78.1828}, Category: CategoryCity},
	{Name: "Vijayawada", ParentCity: "Vijayawada", State: "Andhra Pradesh", Coordinates: Coordinates{Lat: 16.5062, Lng: 80.6480}, Category: CategoryCity},
	{Name: "Jodhpur", ParentCity: "Jodhpur", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.2389, Lng: 73.0243}, Category: CategoryCity},
	{Name: "Madurai", ParentCity: "Madurai", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 9.9252, Lng: 78.1198}, Category: CategoryCity},
	{Name: "Raipur", ParentCity: "Raipur", State: "Chhattisgarh", Coordinates: Coordinates{Lat: 21.2514, Lng: 81.6296}, Category: CategoryCity},
	{Name: "Kota", ParentCity: "Kota", State: "Rajasthan", Coordinates: Coordinates{Lat: 25.2138, Lng: 75.8648}, Category: CategoryCity},
	{Name: "Guwahati", ParentCity: "Guwahati", State: "Assam", Coordinates: Coordinates{Lat: 26.1445, Lng: 91.7362}, Category: CategoryCity},
	{Name: "Chandigarh", ParentCity: "Chandigarh", State: "Chandigarh", Coordinates: Coordinates{Lat: 30.7333, Lng: 76.7794}, Category: CategoryCity},
	{Name: "Thiruvananthapuram", ParentCity: "Thiruvananthapuram", State: "Kerala", Coordinates: Coordinates{Lat: 8.5241, Lng: 76.9366}, Category: CategoryCity},
	{Name: "Solapur", ParentCity: "Solapur", State: "Maharashtra", Coordinates: Coordinates{Lat: 17.6599, Lng: 75.9064}, Category: CategoryCity},
	{Name: "Hubballi-Dharwad", ParentCity: "Hubballi", State: "Karnataka", Coordinates: Coordinates{Lat: 15.3647, Lng: 75.1240}, Category: CategoryCity},
	{Name: "Tiruchirappalli", ParentCity: "Tiruchirappalli", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 10.7905, Lng: 78.7047}, Category: CategoryCity},
	{Name: "Bareilly", ParentCity: "Bareilly", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.3670, Lng: 79.4304}, Category: CategoryCity},
	{Name: "Mysore", ParentCity: "Mysore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.2958, Lng: 76.6394}, Category: CategoryCity, Aliases: []string{"Mysuru"}},
	{Name: "Tiruppur", ParentCity: "Tiruppur", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 11.1085, Lng: 77.3411}, Category: CategoryCity},
	{Name: "Gurgaon", ParentCity: "Gurgaon", State: "Haryana", Coordinates: Coordinates{Lat: 28.4595, Lng: 77.0266}, Category: CategoryCity, Aliases: []string{"Gurugram"}},
	{Name: "Aligarh", ParentCity: "Aligarh", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 27.8974, Lng: 78.0880}, Category: CategoryCity},
	{Name: "Jalandhar", ParentCity: "Jalandhar", State: "Punjab", Coordinates: Coordinates{Lat: 31.3260, Lng: 75.5762}, Category: CategoryCity},
	{Name: "Bhubaneswar", ParentCity: "Bhubaneswar", State: "Odisha", Coordinates: Coordinates{Lat: 20.2961, Lng: 85.8245}, Category: CategoryCity},
	{Name: "Salem", ParentCity: "Salem", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 11.6643, Lng: 78.1460}, Category: CategoryCity},
	{Name: "Mira-Bhayandar", ParentCity: "Mira-Bhayandar", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.2952, Lng: 72.8544}, Category: CategoryCity},
	{Name: "Warangal", ParentCity: "Warangal", State: "Telangana", Coordinates: Coordinates{Lat: 17.9689, Lng: 79.5941}, Category: CategoryCity},
	{Name: "Guntur", ParentCity: "Guntur", State: "Andhra Pradesh", Coordinates: Coordinates{Lat: 16.3067, Lng: 80.4365}, Category: CategoryCity},
	{Name: "Bhiwandi", ParentCity: "Bhiwandi", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.3002, Lng: 73.0635}, Category: CategoryCity},
	{Name: "Saharanpur", ParentCity: "Saharanpur", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 29.9680, Lng: 77.5552}, Category: CategoryCity},
	{Name: "Gorakhpur", ParentCity: "Gorakhpur", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 26.7606, Lng: 83.3732}, Category: CategoryCity},
	{Name: "Bikaner", ParentCity: "Bikaner", State: "Rajasthan", Coordinates: Coordinates{Lat: 28.0229, Lng: 73.3119}, Category: CategoryCity},
	{Name: "Amravati", ParentCity: "Amravati", State: "Maharashtra", Coordinates: Coordinates{Lat: 20.9374, Lng: 77.7796}, Category: CategoryCity},
	{Name: "Noida", ParentCity: "Noida", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.5355, Lng: 77.3910}, Category: CategoryCity},
	{Name: "Jamshedpur", ParentCity: "Jamshedpur", State: "Jharkhand", Coordinates: Coordinates{Lat: 22.8046, Lng: 86.2029}, Category: CategoryCity},
	{Name: "Bhilai Nagar", ParentCity: "Bhilai", State: "Chhattisgarh", Coordinates: Coordinates{Lat: 21.1938, Lng: 81.3509}, Category: CategoryCity},
	{Name: "Cuttack", ParentCity: "Cuttack", State: "Odisha", Coordinates: Coordinates{Lat: 20.4625, Lng: 85.8828}, Category: CategoryCity},
	{Name: "Firozabad", ParentCity: "Firozabad", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 27.1592, Lng: 78.3957}, Category: CategoryCity},
	{Name: "Kochi", ParentCity: "Kochi", State: "Kerala", Coordinates: Coordinates{Lat: 9.9312, Lng: 76.2673}, Category: CategoryCity},
	{Name: "Nellore", ParentCity: "Nellore", State: "Andhra Pradesh", Coordinates: Coordinates{Lat: 14.4426, Lng: 79.9865}, Category: CategoryCity},
	{Name: "Bhavnagar", ParentCity: "Bhavnagar", State: "Gujarat", Coordinates: Coordinates{Lat: 21.7645, Lng: 72.1519}, Category: CategoryCity},
	{Name: "Dehradun", ParentCity: "Dehradun", State: "Uttarakhand", Coordinates: Coordinates{Lat: 30.3165, Lng: 78.0322}, Category: CategoryCity},
	{Name: "Durgapur", ParentCity: "Durgapur", State: "West Bengal", Coordinates: Coordinates{Lat: 23.5204, Lng: 87.3119}, Category: CategoryCity},
	{Name: "Asansol", ParentCity: "Asansol", State: "West Bengal", Coordinates: Coordinates{Lat: 23.6739, Lng: 86.9524}, Category: CategoryCity},
	{Name: "Rourkela", ParentCity: "Rourkela", State: "Odisha", Coordinates: Coordinates{Lat: 22.2604, Lng: 84.8536}, Category: CategoryCity},
	{Name: "Nanded", ParentCity: "Nanded", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.1383, Lng: 77.2975}, Category: CategoryCity},
	{Name: "Kolhapur", ParentCity: "Kolhapur", State: "Maharashtra", Coordinates: Coordinates{Lat: 16.7050, Lng: 74.2433}, Category: CategoryCity},
	{Name: "Ajmer", ParentCity: "Ajmer", State: "Rajasthan", Coordinates: Coordinates{Lat: 26.4499, Lng: 74.6399}, Category: CategoryCity},
	{Name: "Akola", ParentCity: "Akola", State: "Maharashtra", Coordinates: Coordinates{Lat: 20.7002, Lng: 77.0082}, Category: CategoryCity},
	{Name: "Gulbarga", ParentCity: "Gulbarga", State: "Karnataka", Coordinates: Coordinates{Lat: 17.3297, Lng: 76.8343}, Category: CategoryCity},
	{Name: "Jamnagar", ParentCity: "Jamnagar", State: "Gujarat", Coordinates: Coordinates{Lat: 22.4707, Lng: 70.0577}, Category: CategoryCity},
	{Name: "Ujjain", ParentCity: "Ujjain", State: "Madhya Pradesh", Coordinates: Coordinates{Lat: 23.1765, Lng: 75.7885}, Category: CategoryCity},
	{Name: "Loni", ParentCity: "Loni", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 28.7333, Lng: 77.2833}, Category: CategoryCity},
	{Name: "Siliguri", ParentCity: "Siliguri", State: "West Bengal", Coordinates: Coordinates{Lat: 26.7271, Lng: 88.3953}, Category: CategoryCity},
	{Name: "Jhansi", ParentCity: "Jhansi", State: "Uttar Pradesh", Coordinates: Coordinates{Lat: 25.4484, Lng: 78.5685}, Category: CategoryCity},
	{Name: "Ulhasnagar", ParentCity: "Ulhasnagar", State: "Maharashtra", Coordinates: Coordinates{Lat: 19.2215, Lng: 73.1645}, Category: CategoryCity},
	{Name: "Jammu", ParentCity: "Jammu", State: "Jammu and Kashmir", Coordinates: Coordinates{Lat: 32.7266, Lng: 74.8570}, Category: CategoryCity},
	{Name: "Sangli-Miraj & Kupwad", ParentCity: "Sangli", State: "Maharashtra", Coordinates: Coordinates{Lat: 16.8524, Lng: 74.5815}, Category: CategoryCity},
	{Name: "Mangalore", ParentCity: "Mangalore", State: "Karnataka", Coordinates: Coordinates{Lat: 12.9141, Lng: 74.8560}, Category: CategoryCity},
	{Name: "Erode", ParentCity: "Erode", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 11.3410, Lng: 77.7172}, Category: CategoryCity},
	{Name: "Belgaum", ParentCity: "Belgaum", State: "Karnataka", Coordinates: Coordinates{Lat: 15.8497, Lng: 74.4977}, Category: CategoryCity},
	{Name: "Ambattur", ParentCity: "Ambattur", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 13.1143, Lng: 80.1548}, Category: CategoryCity},
	{Name: "Tirunelveli", ParentCity: "Tirunelveli", State: "Tamil Nadu", Coordinates: Coordinates{Lat: 8.7139, Lng: 77.7567}, Category: CategoryCity},
	{Name: "Malegaon", ParentCity: "Malegaon", State: "Maharashtra", Coordinates: Coordinates{Lat: 20.5579, Lng: 74.5287}, Category: CategoryCity},
	{Name: "Gaya", ParentCity: "Gaya", State: "Bihar", Coordinates: Coordinates{Lat: 24.7914, Lng: 85.0002}, Category: CategoryCity},
	{Name: "Jalgaon", ParentCity: "Jalgaon", State: "Maharashtra", Coordinates: Coordinates{Lat: 21.0077, Lng: 75.5626}, Category: CategoryCity},
	{Name: "Udaipur", ParentCity: "Udaipur", State: "Rajasthan", Coordinates: Coordinates{Lat: 24.5854, Lng: 73.7125}, Category: CategoryCity},
	{Name: "Maheshtala", ParentCity: "Maheshtala", State: "West Bengal", Coordinates: Coordinates{Lat: 22.5093, Lng: 88.2482}, Category: CategoryCity},
}

// popularCityNames is the fixed subset offered for empty-query suggestions.
var popularCityNames = []string{
	"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata",
	"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
}
